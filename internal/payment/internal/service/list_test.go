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
	"testing"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/minipay/internal/payment/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPaymentService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, Config{})
	orders := []struct {
		status domain.PaymentStatus
		fee    int64
		user   string
	}{
		{status: domain.PaymentStatusSuccess, fee: 300, user: "openid-1"},
		{status: domain.PaymentStatusPending, fee: 100, user: "openid-1"},
		{status: domain.PaymentStatusRefund, fee: 500, user: "openid-2"},
		{status: domain.PaymentStatusSuccess, fee: 200, user: "openid-2"},
	}
	for i, o := range orders {
		_, err := env.repo.Create(context.Background(), domain.PaymentOrder{
			TradeNo:  fmt.Sprintf("ORDER-%d", i),
			Status:   o.status,
			TotalFee: o.fee,
			UserID:   o.user,
			BizType:  "ORDER",
		})
		require.NoError(t, err)
	}

	testCases := []struct {
		name  string
		mock  func()
		query domain.ListQuery

		wantFees  []int64
		wantTotal int64
		wantErr   error
	}{
		{
			name: "按照金额降序",
			mock: func() {},
			query: domain.ListQuery{
				SortType: SortTypeSort,
				SortVal:  "fee",
				IsTotal:  true,
			},
			wantFees:  []int64{500, 300, 200, 100},
			wantTotal: 4,
		},
		{
			name: "分页",
			mock: func() {},
			query: domain.ListQuery{
				SortType: SortTypeSort,
				SortVal:  "fee",
				Page:     2,
				Size:     3,
				IsTotal:  true,
			},
			wantFees:  []int64{100},
			wantTotal: 4,
		},
		{
			name: "不计算总数",
			mock: func() {},
			query: domain.ListQuery{
				SortType: SortTypeSort,
				SortVal:  "fee",
				OldTotal: 123,
			},
			wantFees:  []int64{500, 300, 200, 100},
			wantTotal: 123,
		},
		{
			name: "按照状态过滤",
			mock: func() {},
			query: domain.ListQuery{
				SortType: SortTypeStatus,
				SortVal:  "2",
				IsTotal:  true,
			},
			wantTotal: 2,
		},
		{
			name: "按照手机号过滤",
			mock: func() {
				env.users.EXPECT().FindUserIDByMobile(gomock.Any(), "13800000000").Return("openid-2", nil)
			},
			query: domain.ListQuery{
				Search:   "13800000000",
				SortType: SortTypeSort,
				SortVal:  "fee",
				IsTotal:  true,
			},
			wantFees:  []int64{500, 200},
			wantTotal: 2,
		},
		{
			name: "手机号找不到用户",
			mock: func() {
				env.users.EXPECT().FindUserIDByMobile(gomock.Any(), "13900000000").Return("", nil)
			},
			query: domain.ListQuery{
				Search:  "13900000000",
				IsTotal: true,
			},
			wantFees:  []int64{},
			wantTotal: 0,
		},
		{
			name: "查找用户失败",
			mock: func() {
				env.users.EXPECT().FindUserIDByMobile(gomock.Any(), "13900000000").Return("", errors.New("mock db error"))
			},
			query: domain.ListQuery{
				Search: "13900000000",
			},
			wantErr: errors.New("按照手机号查找用户失败: mock db error"),
		},
		{
			name: "状态非法",
			mock: func() {},
			query: domain.ListQuery{
				SortType: SortTypeStatus,
				SortVal:  "abc",
			},
			wantErr: ErrInvalidArgument,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.mock()
			res, err := env.svc.List(context.Background(), tc.query)
			if tc.wantErr != nil {
				require.Error(t, err)
				if errors.Is(err, ErrInvalidArgument) {
					assert.ErrorIs(t, err, tc.wantErr)
				} else {
					assert.Equal(t, tc.wantErr.Error(), err.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantTotal, res.Total)
			if tc.wantFees != nil {
				assert.Equal(t, tc.wantFees, slice.Map(res.List, func(idx int, src domain.PaymentOrder) int64 {
					return src.TotalFee
				}))
			}
			if tc.query.SortType == SortTypeStatus {
				for _, o := range res.List {
					assert.Equal(t, domain.PaymentStatusSuccess, o.Status)
				}
			}
		})
	}
}

func TestPaymentService_Stat(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, Config{})
	env.createOrder(t, "ORDER-1", domain.PaymentStatusSuccess, 300)
	env.createOrder(t, "ORDER-2", domain.PaymentStatusSuccess, 200)
	env.createOrder(t, "ORDER-3", domain.PaymentStatusRefund, 500)
	env.createOrder(t, "ORDER-4", domain.PaymentStatusPending, 700)

	stat, err := env.svc.Stat(context.Background(), "openid-1")
	require.NoError(t, err)
	assert.Equal(t, domain.Stat{
		PaidCount:   2,
		PaidFee:     500,
		RefundCount: 1,
		RefundFee:   500,
	}, stat)

	stat, err = env.svc.Stat(context.Background(), "openid-x")
	require.NoError(t, err)
	assert.Equal(t, domain.Stat{}, stat)
}
