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

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGatewayTime(t *testing.T) {
	testCases := []struct {
		name    string
		val     string
		want    int64
		wantErr bool
	}{
		{
			name: "北京时间",
			val:  "20230101120000",
			want: time.Date(2023, 1, 1, 4, 0, 0, 0, time.UTC).UnixMilli(),
		},
		{
			name:    "长度不对",
			val:     "2023-01-01",
			wantErr: true,
		},
		{
			name:    "空字符串",
			wantErr: true,
		},
		{
			name:    "月份非法",
			val:     "20231301120000",
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseGatewayTime(tc.val)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.val, FormatGatewayTime(time.UnixMilli(got)))
		})
	}
}

func TestStatusOfTradeState(t *testing.T) {
	testCases := map[string]PaymentStatus{
		TradeStateSuccess: PaymentStatusSuccess,
		TradeStateNotPay:  PaymentStatusNotPaid,
		TradeStateRefund:  PaymentStatusRefund,
		TradeStateClosed:  PaymentStatusClosed,
		"USERPAYING":      PaymentStatusFail,
		"PAYERROR":        PaymentStatusFail,
		"":                PaymentStatusFail,
	}
	for state, want := range testCases {
		assert.Equal(t, want, StatusOfTradeState(state), state)
	}
}
