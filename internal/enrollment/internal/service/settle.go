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
	"errors"
	"fmt"

	"github.com/ecodeclub/minipay/internal/enrollment/internal/event"
	"github.com/ecodeclub/minipay/internal/enrollment/internal/repository"
	"github.com/ecodeclub/minipay/internal/payment"
	"github.com/gotomicro/ego/core/elog"
)

const timeoutRefundDesc = "缴费支付超时退款"

var ErrRefundUnfinished = errors.New("退款没有完成")

// Settle 支付成功之后更新报名记录的缴费状态
// 找不到有效的报名记录说明报名已经取消或者超时，直接退款
func (s *service) Settle(ctx context.Context, tradeNo string, paidAt int64) error {
	e, err := s.repo.FindActiveByTradeNo(ctx, tradeNo)
	if errors.Is(err, repository.ErrEnrollmentNotFound) {
		s.l.Warn("支付成功但是没有有效的报名记录，退款", elog.String("trade_no", tradeNo))
		return s.refund(ctx, tradeNo)
	}
	if err != nil {
		return fmt.Errorf("查找报名记录失败: %w", err)
	}

	changed, err := s.repo.MarkPaid(ctx, tradeNo, paidAt)
	if err != nil {
		return fmt.Errorf("更新缴费状态失败: %w", err)
	}
	if !changed {
		// 重复结算
		return nil
	}
	err = s.producer.Produce(ctx, event.EnrollmentPaidEvent{
		EnrollmentId: e.Id,
		ActivityId:   e.ActivityId,
		UserId:       e.UserId,
		TradeNo:      tradeNo,
		PayFee:       e.PayFee,
		PaidAt:       paidAt,
	})
	if err != nil {
		s.l.Error("发送报名缴费成功事件失败",
			elog.FieldErr(err),
			elog.String("trade_no", tradeNo),
			elog.Int64("activity_id", e.ActivityId))
	}
	return nil
}

// refund 返回 error 的时候结算任务会被放回去重试，直到退款成功
func (s *service) refund(ctx context.Context, tradeNo string) error {
	ok, err := s.paymentSvc.Refund(ctx, tradeNo, timeoutRefundDesc, true)
	switch {
	case errors.Is(err, payment.ErrNotPaidOrAlreadyRefunded):
		// 之前已经退过款，比如超时订单扫描先一步退款了
		s.l.Info("订单已经退款", elog.String("trade_no", tradeNo))
		return nil
	case err != nil:
		return fmt.Errorf("退款失败: %w", err)
	case !ok:
		return fmt.Errorf("%w: trade_no=%s", ErrRefundUnfinished, tradeNo)
	}
	s.l.Info("没有报名记录的订单已退款", elog.String("trade_no", tradeNo))
	return nil
}

func (s *service) HasBusinessRecord(ctx context.Context, tradeNo string) (bool, error) {
	_, err := s.repo.FindActiveByTradeNo(ctx, tradeNo)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, repository.ErrEnrollmentNotFound):
		return false, nil
	default:
		return false, err
	}
}
