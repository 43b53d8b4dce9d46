// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"fmt"

	"github.com/ecodeclub/minipay/internal/payment/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

func (s *paymentService) QueryStatus(ctx context.Context, tradeNo string) (bool, error) {
	res, err := s.gateway.QueryOrder(ctx, tradeNo)
	if err != nil {
		s.l.Error("查询微信订单结果未知",
			elog.FieldErr(err),
			elog.String("trade_no", tradeNo))
		return false, fmt.Errorf("查询微信订单失败: %w", err)
	}
	s.l.Info("查询微信订单",
		elog.String("trade_no", tradeNo),
		elog.String("trade_state", res.TradeState),
		elog.Any("raw", res.Raw))
	return res.OK() && res.TradeState == domain.TradeStateSuccess, nil
}

// FixStatus 以微信的交易状态为准，无条件覆盖本地状态
// 超时的时候不修改本地状态，下一次对账再处理
func (s *paymentService) FixStatus(ctx context.Context, tradeNo string) (bool, error) {
	res, err := s.gateway.QueryOrder(ctx, tradeNo)
	if err != nil {
		s.l.Error("对账查询微信订单结果未知",
			elog.FieldErr(err),
			elog.String("trade_no", tradeNo))
		return false, fmt.Errorf("对账失败: %w", err)
	}

	var endTime int64
	if res.OK() && res.TradeState == domain.TradeStateSuccess {
		endTime, err = domain.ParseGatewayTime(res.EndTime)
		if err != nil {
			s.l.Error("解析支付完成时间失败，使用当前时间",
				elog.FieldErr(err),
				elog.String("trade_no", tradeNo))
			endTime = s.nowFunc().UnixMilli()
		}
	}

	status, err := s.repo.Reconcile(ctx, tradeNo, res, endTime)
	if err != nil {
		return false, fmt.Errorf("更新对账结果失败: %w", err)
	}
	s.l.Info("对账完成",
		elog.String("trade_no", tradeNo),
		elog.String("trade_state", res.TradeState),
		elog.String("status", status.String()),
		elog.Any("raw", res.Raw))
	return status == domain.PaymentStatusSuccess, nil
}
