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

func (s *paymentService) Refund(ctx context.Context, tradeNo string, desc string, strict bool) (bool, error) {
	order, err := s.repo.FindByTradeNo(ctx, tradeNo)
	if err != nil {
		return false, fmt.Errorf("查找支付记录失败: %w", err)
	}

	paid, err := s.QueryStatus(ctx, tradeNo)
	if err != nil {
		return s.refundFailed(strict, err)
	}
	if !paid {
		return s.refundFailed(strict, ErrNotPaidOrAlreadyRefunded)
	}

	refundNo := s.sn.RefundNo(tradeNo)
	res, err := s.gateway.Refund(ctx, domain.RefundRequest{
		TradeNo:  tradeNo,
		RefundNo: refundNo,
		Amount:   order.TotalFee,
		Total:    order.TotalFee,
		Reason:   desc,
	})
	if err != nil {
		s.l.Error("微信退款结果未知",
			elog.FieldErr(err),
			elog.String("trade_no", tradeNo),
			elog.String("refund_no", refundNo))
		return s.refundFailed(strict, err)
	}
	if !res.OK() || res.RefundID == "" {
		s.l.Error("微信退款失败",
			elog.String("trade_no", tradeNo),
			elog.String("refund_no", refundNo),
			elog.String("code", res.Code),
			elog.String("message", res.Message),
			elog.Any("raw", res.Raw))
		return s.refundFailed(strict, fmt.Errorf("%w: %s", ErrRefundRejected, res.Message))
	}

	_, err = s.repo.MarkRefunded(ctx, tradeNo, domain.RefundInfo{
		RefundID:    res.RefundID,
		OutRefundNo: refundNo,
		RefundTime:  s.nowFunc().UnixMilli(),
		Desc:        desc,
	}, res.Raw)
	if err != nil {
		// 微信已经退款成功，本地状态留给对账修正
		s.l.Error("保存退款信息失败",
			elog.FieldErr(err),
			elog.String("trade_no", tradeNo),
			elog.String("refund_id", res.RefundID))
		return false, fmt.Errorf("保存退款信息失败: %w", err)
	}
	s.l.Info("微信退款成功",
		elog.String("trade_no", tradeNo),
		elog.String("refund_id", res.RefundID),
		elog.Any("raw", res.Raw))
	return true, nil
}

func (s *paymentService) refundFailed(strict bool, err error) (bool, error) {
	if strict {
		return false, err
	}
	return false, nil
}
