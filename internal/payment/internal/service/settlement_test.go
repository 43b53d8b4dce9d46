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
	"testing"
	"time"

	"github.com/ecodeclub/minipay/internal/payment/internal/domain"
	"github.com/ecodeclub/minipay/internal/payment/internal/repository"
	"github.com/ecodeclub/minipay/internal/payment/internal/repository/dao"
	svcmocks "github.com/ecodeclub/minipay/internal/payment/internal/service/mocks"
	testioc "github.com/ecodeclub/minipay/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SettlementDispatcherTestSuite struct {
	suite.Suite
	repo repository.PaymentRepository
	now  time.Time
}

func TestSettlementDispatcher(t *testing.T) {
	suite.Run(t, new(SettlementDispatcherTestSuite))
}

func (s *SettlementDispatcherTestSuite) SetupTest() {
	db := testioc.NewDB(s.T())
	require.NoError(s.T(), dao.InitTables(db))
	s.repo = repository.NewPaymentRepository(dao.NewPaymentGORMDAO(db), dao.NewSettlementGORMDAO(db))
	s.now = time.Now()
}

// paid 创建一个已经支付成功的订单，同时也就有了结算任务
func (s *SettlementDispatcherTestSuite) paid(tradeNo string) {
	t := s.T()
	_, err := s.repo.Create(context.Background(), domain.PaymentOrder{
		TradeNo:  tradeNo,
		Status:   domain.PaymentStatusPending,
		TotalFee: 500,
		UserID:   "openid-1",
		BizType:  "ORDER",
	})
	require.NoError(t, err)
	affected, err := s.repo.MarkPaid(context.Background(), tradeNo, 500, "wx-"+tradeNo, 1672545600000, nil)
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)
}

func (s *SettlementDispatcherTestSuite) dispatcher(hook SettlementHook, offset time.Duration) *SettlementDispatcher {
	d := NewSettlementDispatcher(s.repo, hook)
	d.nowFunc = func() time.Time {
		return s.now.Add(offset)
	}
	return d
}

func (s *SettlementDispatcherTestSuite) TestDispatchOnce() {
	t := s.T()
	ctrl := gomock.NewController(t)
	hook := svcmocks.NewMockSettlementHook(ctrl)
	s.paid("ORDER-1")

	hook.EXPECT().Settle(gomock.Any(), "ORDER-1", int64(1672545600000)).Return(nil).Times(1)
	d := s.dispatcher(hook, time.Second)
	ok, err := d.Dispatch(context.Background(), "ORDER-1")
	require.NoError(t, err)
	assert.True(t, ok)

	// 重复的消息和重试任务都不会再次执行
	ok, err = d.Dispatch(context.Background(), "ORDER-1")
	require.NoError(t, err)
	assert.False(t, ok)
	cnt, err := s.dispatcher(hook, time.Hour).RunDue(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 0, cnt)

	task, err := s.repo.FindSettlement(context.Background(), "ORDER-1")
	require.NoError(t, err)
	assert.Equal(t, domain.SettlementStatusDone, task.Status)
	assert.Equal(t, 1, task.Attempts)
}

func (s *SettlementDispatcherTestSuite) TestDispatchExclusive() {
	t := s.T()
	ctrl := gomock.NewController(t)
	hook := svcmocks.NewMockSettlementHook(ctrl)
	s.paid("ORDER-1")
	d := s.dispatcher(hook, time.Second)

	hook.EXPECT().Settle(gomock.Any(), "ORDER-1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, tradeNo string, paidAt int64) error {
			// 执行过程中别人抢不到
			ok, err := d.Dispatch(ctx, tradeNo)
			assert.NoError(t, err)
			assert.False(t, ok)
			return nil
		}).Times(1)
	ok, err := d.Dispatch(context.Background(), "ORDER-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func (s *SettlementDispatcherTestSuite) TestDispatchRetry() {
	t := s.T()
	ctrl := gomock.NewController(t)
	hook := svcmocks.NewMockSettlementHook(ctrl)
	s.paid("ORDER-1")

	hook.EXPECT().Settle(gomock.Any(), "ORDER-1", gomock.Any()).Return(errors.New("mock settle error"))
	ok, err := s.dispatcher(hook, time.Second).Dispatch(context.Background(), "ORDER-1")
	assert.Equal(t, errors.New("mock settle error"), err)
	assert.False(t, ok)

	task, err := s.repo.FindSettlement(context.Background(), "ORDER-1")
	require.NoError(t, err)
	assert.Equal(t, domain.SettlementStatusPending, task.Status)
	assert.Equal(t, 1, task.Attempts)
	assert.Equal(t, "mock settle error", task.LastErr)
	assert.Equal(t, s.now.Add(time.Second+5*time.Second).UnixMilli(), task.NextRunAt)

	// 还没到重试时间
	ok, err = s.dispatcher(hook, 3*time.Second).Dispatch(context.Background(), "ORDER-1")
	require.NoError(t, err)
	assert.False(t, ok)

	hook.EXPECT().Settle(gomock.Any(), "ORDER-1", gomock.Any()).Return(nil)
	cnt, err := s.dispatcher(hook, 7*time.Second).RunDue(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, cnt)

	task, err = s.repo.FindSettlement(context.Background(), "ORDER-1")
	require.NoError(t, err)
	assert.Equal(t, domain.SettlementStatusDone, task.Status)
	assert.Equal(t, 2, task.Attempts)
	assert.Equal(t, "", task.LastErr)
}

// TestLeaseExpired 执行者崩溃之后，租约到期可以被重新执行
func (s *SettlementDispatcherTestSuite) TestLeaseExpired() {
	t := s.T()
	ctrl := gomock.NewController(t)
	hook := svcmocks.NewMockSettlementHook(ctrl)
	s.paid("ORDER-1")

	ok, err := s.repo.ClaimSettlement(context.Background(), "ORDER-1", s.now.Add(time.Second), time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.dispatcher(hook, 30*time.Second).Dispatch(context.Background(), "ORDER-1")
	require.NoError(t, err)
	assert.False(t, ok)

	hook.EXPECT().Settle(gomock.Any(), "ORDER-1", gomock.Any()).Return(nil)
	ok, err = s.dispatcher(hook, 2*time.Minute).Dispatch(context.Background(), "ORDER-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func (s *SettlementDispatcherTestSuite) TestRunDuePartialFailure() {
	t := s.T()
	ctrl := gomock.NewController(t)
	hook := svcmocks.NewMockSettlementHook(ctrl)
	s.paid("ORDER-1")
	s.paid("ORDER-2")
	s.paid("ORDER-3")

	hook.EXPECT().Settle(gomock.Any(), "ORDER-1", gomock.Any()).Return(nil)
	hook.EXPECT().Settle(gomock.Any(), "ORDER-2", gomock.Any()).Return(errors.New("mock settle error"))
	hook.EXPECT().Settle(gomock.Any(), "ORDER-3", gomock.Any()).Return(nil)
	cnt, err := s.dispatcher(hook, time.Second).RunDue(context.Background(), 10)
	assert.Error(t, err)
	assert.Equal(t, 2, cnt)
}

func TestBackoff(t *testing.T) {
	testCases := []struct {
		attempts int
		want     time.Duration
	}{
		{attempts: 0, want: 5 * time.Second},
		{attempts: 1, want: 5 * time.Second},
		{attempts: 2, want: 10 * time.Second},
		{attempts: 3, want: 20 * time.Second},
		{attempts: 9, want: 1280 * time.Second},
		{attempts: 10, want: 30 * time.Minute},
		{attempts: 17, want: 30 * time.Minute},
		{attempts: 100, want: 30 * time.Minute},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, Backoff(tc.attempts))
	}
}
