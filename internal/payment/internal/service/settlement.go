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
	"time"

	"github.com/ecodeclub/minipay/internal/payment/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

const (
	defaultSettlementLease = time.Minute
	settlementBaseBackoff  = 5 * time.Second
	settlementMaxBackoff   = 30 * time.Minute
)

// SettlementDispatcher 负责执行结算任务
// 同一个任务在任何时刻最多只有一个执行者，执行失败按照指数退避重新放回去
type SettlementDispatcher struct {
	repo    repository.PaymentRepository
	hook    SettlementHook
	lease   time.Duration
	nowFunc func() time.Time
	l       *elog.Component
}

func NewSettlementDispatcher(repo repository.PaymentRepository, hook SettlementHook) *SettlementDispatcher {
	return &SettlementDispatcher{
		repo:    repo,
		hook:    hook,
		lease:   defaultSettlementLease,
		nowFunc: time.Now,
		l:       elog.DefaultLogger.With(elog.FieldComponent("SettlementDispatcher")),
	}
}

// Dispatch 返回 true 说明本次调用抢到了任务并且执行成功
func (d *SettlementDispatcher) Dispatch(ctx context.Context, tradeNo string) (bool, error) {
	ok, err := d.repo.ClaimSettlement(ctx, tradeNo, d.nowFunc(), d.lease)
	if err != nil {
		return false, fmt.Errorf("抢占结算任务失败: %w", err)
	}
	if !ok {
		// 已经完成，或者别人正在执行，或者还没到重试时间
		return false, nil
	}
	task, err := d.repo.FindSettlement(ctx, tradeNo)
	if err != nil {
		return false, d.release(ctx, tradeNo, 1, err)
	}

	if err = d.hook.Settle(ctx, tradeNo, task.PaidAt); err != nil {
		d.l.Error("执行结算任务失败",
			elog.FieldErr(err),
			elog.String("trade_no", tradeNo),
			elog.Int64("attempts", int64(task.Attempts)))
		return false, d.release(ctx, tradeNo, task.Attempts, err)
	}
	if err = d.repo.CompleteSettlement(ctx, tradeNo); err != nil {
		// 租约到期之后会被再次执行，依赖业务方幂等
		return false, fmt.Errorf("标记结算任务完成失败: %w", err)
	}
	d.l.Info("结算任务执行成功", elog.String("trade_no", tradeNo))
	return true, nil
}

// RunDue 执行所有已经到期的任务，返回执行成功的个数
func (d *SettlementDispatcher) RunDue(ctx context.Context, limit int) (int, error) {
	tasks, err := d.repo.FindDueSettlements(ctx, d.nowFunc(), limit)
	if err != nil {
		return 0, err
	}
	var (
		cnt  int
		errs []error
	)
	for _, t := range tasks {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		ok, er := d.Dispatch(ctx, t.TradeNo)
		if er != nil {
			errs = append(errs, er)
			continue
		}
		if ok {
			cnt++
		}
	}
	return cnt, errors.Join(errs...)
}

func (d *SettlementDispatcher) release(ctx context.Context, tradeNo string, attempts int, cause error) error {
	next := d.nowFunc().Add(Backoff(attempts))
	if err := d.repo.ReleaseSettlement(ctx, tradeNo, next, cause.Error()); err != nil {
		d.l.Error("释放结算任务失败",
			elog.FieldErr(err),
			elog.String("trade_no", tradeNo))
	}
	return cause
}

// Backoff 第 attempts 次失败之后的等待时间
func Backoff(attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	if attempts > 16 {
		return settlementMaxBackoff
	}
	return min(settlementBaseBackoff<<(attempts-1), settlementMaxBackoff)
}
