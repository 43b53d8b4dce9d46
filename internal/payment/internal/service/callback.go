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

	"github.com/ecodeclub/minipay/internal/payment/internal/domain"
	"github.com/ecodeclub/minipay/internal/payment/internal/event"
	"github.com/gotomicro/ego/core/elog"
)

// HandleNotification 任何情况下都返回成功应答，处理不了的情况交给对账
func (s *paymentService) HandleNotification(ctx context.Context, n domain.Notification) domain.NotifyAck {
	logger := s.l.With(elog.String("trade_no", n.OutTradeNo))
	logger.Info("收到微信支付通知", elog.Any("notification", n), elog.Any("raw", n.Raw))

	if !n.Success() {
		// 失败通知不驱动任何状态变更
		logger.Warn("微信支付通知结果非成功，等待对账",
			elog.Any("transport_ok", n.TransportOK),
			elog.Any("business_ok", n.BusinessOK))
		return domain.SuccessAck
	}

	endTime, err := domain.ParseGatewayTime(n.EndTime)
	if err != nil {
		logger.Error("解析支付完成时间失败，使用当前时间", elog.FieldErr(err))
		endTime = s.nowFunc().UnixMilli()
	}

	order, err := s.repo.FindByTradeNo(ctx, n.OutTradeNo)
	if err != nil {
		logger.Error("查找支付记录失败", elog.FieldErr(err))
		return domain.SuccessAck
	}
	if order.TotalFee != n.TotalFee {
		logger.Error("微信支付通知金额和订单金额不一致",
			elog.Int64("total_fee", order.TotalFee),
			elog.Int64("notify_fee", n.TotalFee))
		return domain.SuccessAck
	}

	raw := n.Raw
	if raw == nil {
		raw = n
	}
	affected, err := s.repo.MarkPaid(ctx, n.OutTradeNo, n.TotalFee, n.TransactionID, endTime, raw)
	if err != nil {
		logger.Error("更新支付成功状态失败", elog.FieldErr(err))
		return domain.SuccessAck
	}
	if affected != 1 {
		logger.Info("重复的微信支付通知，忽略", elog.Any("status", order.Status.String()))
		return domain.SuccessAck
	}

	evt := event.SettlementEvent{TradeNo: n.OutTradeNo, PaidAt: endTime}
	if er := s.producer.Produce(ctx, evt); er != nil {
		// 结算任务已经落库，重试任务会兜底
		logger.Error("发送结算消息失败",
			elog.FieldErr(er),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt))
	}
	return domain.SuccessAck
}
