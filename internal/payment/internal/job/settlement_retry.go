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

	"github.com/ecodeclub/minipay/internal/payment/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*SettlementRetryJob)(nil)

// SettlementRetryJob 兜底执行消息丢失或者执行失败的结算任务
type SettlementRetryJob struct {
	dispatcher *service.SettlementDispatcher
	limit      int
	l          *elog.Component
}

func NewSettlementRetryJob(dispatcher *service.SettlementDispatcher, limit int) *SettlementRetryJob {
	return &SettlementRetryJob{
		dispatcher: dispatcher,
		limit:      limit,
		l:          elog.DefaultLogger,
	}
}

func (s *SettlementRetryJob) Name() string {
	return "payment_settlement_retry_job"
}

func (s *SettlementRetryJob) Run(ctx context.Context) error {
	cnt, err := s.dispatcher.RunDue(ctx, s.limit)
	if cnt > 0 {
		s.l.Info("重试结算任务", elog.Int64("succeeded", int64(cnt)))
	}
	return err
}
