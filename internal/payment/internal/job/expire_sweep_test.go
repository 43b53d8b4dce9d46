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
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/minipay/internal/payment/internal/domain"
	"github.com/ecodeclub/minipay/internal/payment/internal/service"
	svcmocks "github.com/ecodeclub/minipay/internal/payment/internal/service/mocks"
	paymentmocks "github.com/ecodeclub/minipay/internal/payment/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestExpireSweepJob_Run(t *testing.T) {
	now := time.Date(2023, 1, 1, 12, 0, 0, 0, domain.GatewayLocation)
	before := now.Add(-10 * time.Minute)
	testCases := []struct {
		name    string
		mock    func(svc *paymentmocks.MockService, locator *svcmocks.MockBusinessLocator)
		wantErr error
	}{
		{
			name: "没有超时订单",
			mock: func(svc *paymentmocks.MockService, locator *svcmocks.MockBusinessLocator) {
				svc.EXPECT().FindTimeoutOrders(gomock.Any(), before, 0, 2).Return(nil, nil)
			},
		},
		{
			name: "微信未支付",
			mock: func(svc *paymentmocks.MockService, locator *svcmocks.MockBusinessLocator) {
				svc.EXPECT().FindTimeoutOrders(gomock.Any(), before, 0, 2).
					Return([]domain.PaymentOrder{{TradeNo: "A"}}, nil)
				svc.EXPECT().FixStatus(gomock.Any(), "A").Return(false, nil)
			},
		},
		{
			name: "已支付并且有业务记录",
			mock: func(svc *paymentmocks.MockService, locator *svcmocks.MockBusinessLocator) {
				svc.EXPECT().FindTimeoutOrders(gomock.Any(), before, 0, 2).
					Return([]domain.PaymentOrder{{TradeNo: "A"}}, nil)
				svc.EXPECT().FixStatus(gomock.Any(), "A").Return(true, nil)
				locator.EXPECT().HasBusinessRecord(gomock.Any(), "A").Return(true, nil)
			},
		},
		{
			name: "已支付但是没有业务记录，退款",
			mock: func(svc *paymentmocks.MockService, locator *svcmocks.MockBusinessLocator) {
				svc.EXPECT().FindTimeoutOrders(gomock.Any(), before, 0, 2).
					Return([]domain.PaymentOrder{{TradeNo: "A"}}, nil)
				svc.EXPECT().FixStatus(gomock.Any(), "A").Return(true, nil)
				locator.EXPECT().HasBusinessRecord(gomock.Any(), "A").Return(false, nil)
				svc.EXPECT().Refund(gomock.Any(), "A", "缴费支付超时退款", false).Return(true, nil)
			},
		},
		{
			name: "对账失败的订单跳过",
			mock: func(svc *paymentmocks.MockService, locator *svcmocks.MockBusinessLocator) {
				svc.EXPECT().FindTimeoutOrders(gomock.Any(), before, 0, 2).
					Return([]domain.PaymentOrder{{TradeNo: "A"}, {TradeNo: "B"}}, nil)
				svc.EXPECT().FixStatus(gomock.Any(), "A").Return(false, service.ErrAmbiguousOutcome)
				svc.EXPECT().FixStatus(gomock.Any(), "B").Return(false, nil)
				// A 依旧是待支付，所以下一批从 1 开始
				svc.EXPECT().FindTimeoutOrders(gomock.Any(), before, 1, 2).
					Return([]domain.PaymentOrder{{TradeNo: "C"}}, nil)
				svc.EXPECT().FixStatus(gomock.Any(), "C").Return(true, nil)
				locator.EXPECT().HasBusinessRecord(gomock.Any(), "C").Return(false, errors.New("mock db error"))
			},
		},
		{
			name: "查询超时订单失败",
			mock: func(svc *paymentmocks.MockService, locator *svcmocks.MockBusinessLocator) {
				svc.EXPECT().FindTimeoutOrders(gomock.Any(), before, 0, 2).Return(nil, errors.New("mock db error"))
			},
			wantErr: errors.New("获取超时支付记录失败: mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := paymentmocks.NewMockService(ctrl)
			locator := svcmocks.NewMockBusinessLocator(ctrl)
			tc.mock(svc, locator)
			j := NewExpireSweepJob(svc, locator, 10*time.Minute, 2)
			j.nowFunc = func() time.Time {
				return now
			}
			err := j.Run(context.Background())
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.wantErr.Error())
		})
	}
}
