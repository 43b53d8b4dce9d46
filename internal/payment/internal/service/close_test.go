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
	"testing"

	"github.com/ecodeclub/minipay/internal/payment/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPaymentService_Close(t *testing.T) {
	const tradeNo = "ORDER20230101115500M500-nUfojcH"
	testCases := []struct {
		name    string
		tradeNo string
		mock    func(env testEnv)

		wantOK     bool
		wantStatus domain.PaymentStatus
	}{
		{
			name:       "订单号为空",
			tradeNo:    "",
			mock:       func(env testEnv) {},
			wantOK:     true,
			wantStatus: domain.PaymentStatusPending,
		},
		{
			name:    "关闭成功",
			tradeNo: tradeNo,
			mock: func(env testEnv) {
				env.gateway.EXPECT().CloseOrder(gomock.Any(), tradeNo).Return(okResult(), nil)
				env.gateway.EXPECT().QueryOrder(gomock.Any(), tradeNo).
					Return(tradeQueryResult(domain.TradeStateClosed), nil)
			},
			wantOK:     true,
			wantStatus: domain.PaymentStatusClosed,
		},
		{
			name:    "关闭成功但是对账超时",
			tradeNo: tradeNo,
			mock: func(env testEnv) {
				env.gateway.EXPECT().CloseOrder(gomock.Any(), tradeNo).Return(okResult(), nil)
				env.gateway.EXPECT().QueryOrder(gomock.Any(), tradeNo).
					Return(domain.TradeQueryResult{}, errTimeout)
			},
			wantOK:     true,
			wantStatus: domain.PaymentStatusPending,
		},
		{
			name:    "微信关闭失败",
			tradeNo: tradeNo,
			mock: func(env testEnv) {
				env.gateway.EXPECT().CloseOrder(gomock.Any(), tradeNo).
					Return(domain.GatewayResult{TransportOK: true, Code: "ORDERPAID", Message: "订单已支付"}, nil)
			},
			wantStatus: domain.PaymentStatusPending,
		},
		{
			name:    "网络失败",
			tradeNo: tradeNo,
			mock: func(env testEnv) {
				env.gateway.EXPECT().CloseOrder(gomock.Any(), tradeNo).
					Return(domain.GatewayResult{Message: "connection refused"}, nil)
			},
			wantStatus: domain.PaymentStatusPending,
		},
		{
			name:    "超时",
			tradeNo: tradeNo,
			mock: func(env testEnv) {
				env.gateway.EXPECT().CloseOrder(gomock.Any(), tradeNo).Return(domain.GatewayResult{}, errTimeout)
			},
			wantStatus: domain.PaymentStatusPending,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			env := newTestEnv(t, ctrl, Config{})
			env.createOrder(t, tradeNo, domain.PaymentStatusPending, 500)
			tc.mock(env)
			ok := env.svc.Close(context.Background(), tc.tradeNo)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantStatus, env.order(t, tradeNo).Status)
		})
	}
}
