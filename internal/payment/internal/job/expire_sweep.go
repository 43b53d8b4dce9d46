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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/minipay/internal/payment/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

const timeoutRefundDesc = "缴费支付超时退款"

var _ ecron.NamedJob = (*ExpireSweepJob)(nil)

// ExpireSweepJob 找出超时还处于待支付的订单，以微信为准修正状态
// 微信那边已经支付了但是业务记录不存在的，直接退款
type ExpireSweepJob struct {
	svc     service.Service
	locator service.BusinessLocator
	// 订单过期时间加上一段宽限期，避免和正在支付的用户冲突
	timeout time.Duration
	limit   int
	nowFunc func() time.Time
	l       *elog.Component
}

func NewExpireSweepJob(svc service.Service, locator service.BusinessLocator, timeout time.Duration, limit int) *ExpireSweepJob {
	return &ExpireSweepJob{
		svc:     svc,
		locator: locator,
		timeout: timeout,
		limit:   limit,
		nowFunc: time.Now,
		l:       elog.DefaultLogger,
	}
}

func (s *ExpireSweepJob) Name() string {
	return "payment_expire_sweep_job"
}

func (s *ExpireSweepJob) Run(ctx context.Context) error {
	before := s.nowFunc().Add(-s.timeout)
	// 处理失败的订单依旧是待支付状态，要跳过去
	offset := 0
	for {
		orders, err := s.svc.FindTimeoutOrders(ctx, before, offset, s.limit)
		if err != nil {
			return fmt.Errorf("获取超时支付记录失败: %w", err)
		}
		for _, o := range orders {
			if !s.sweep(ctx, o.TradeNo) {
				offset++
			}
		}
		if len(orders) < s.limit {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// sweep 返回订单是否已经离开了待支付状态
func (s *ExpireSweepJob) sweep(ctx context.Context, tradeNo string) bool {
	paid, err := s.svc.FixStatus(ctx, tradeNo)
	if err != nil {
		s.l.Error("超时订单对账失败",
			elog.FieldErr(err),
			elog.String("trade_no", tradeNo))
		return false
	}
	if !paid {
		return true
	}
	ok, err := s.locator.HasBusinessRecord(ctx, tradeNo)
	if err != nil {
		s.l.Error("查找业务记录失败",
			elog.FieldErr(err),
			elog.String("trade_no", tradeNo))
		return true
	}
	if ok {
		return true
	}
	refunded, err := s.svc.Refund(ctx, tradeNo, timeoutRefundDesc, false)
	if err != nil || !refunded {
		s.l.Error("超时订单退款失败",
			elog.FieldErr(err),
			elog.String("trade_no", tradeNo))
		return true
	}
	s.l.Info("超时订单已退款", elog.String("trade_no", tradeNo))
	return true
}
