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

package sequencenumber

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_TradeNo(t *testing.T) {
	loc := time.FixedZone("CST", 8*3600)
	now := time.Date(2023, 1, 1, 12, 0, 0, 0, loc)
	sng := NewGeneratorWith(func() time.Time { return now },
		func() string { return "nUfojcH2M5j2j3Tk5A1mf2" }, loc)

	testCases := []struct {
		name     string
		bizType  string
		amount   int64
		expected string
		wantErr  error
	}{
		{
			name:     "普通订单",
			bizType:  "ORDER",
			amount:   500,
			expected: "ORDER20230101120000M500-nUfojcH2",
		},
		{
			name:     "金额最小",
			bizType:  "JOIN",
			amount:   1,
			expected: "JOIN20230101120000M1-nUfojcH2M5j",
		},
		{
			name:     "金额最大",
			bizType:  "A",
			amount:   10000000,
			expected: "A20230101120000M10000000-nUfojcH",
		},
		{
			name:    "业务类型为空",
			bizType: "",
			amount:  500,
			wantErr: ErrInvalidPrefix,
		},
		{
			name:    "业务类型包含非法字符",
			bizType: "OR-DER",
			amount:  500,
			wantErr: ErrInvalidPrefix,
		},
		{
			name:    "前缀过长",
			bizType: "ORDERORDER",
			amount:  10000000,
			wantErr: ErrInvalidPrefix,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sn, err := sng.TradeNo(tc.bizType, tc.amount)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.expected, sn)
			assert.Equal(t, TradeNoLength, len(sn))
		})
	}
}

func TestGenerator_RefundNo(t *testing.T) {
	sng := NewGenerator()
	tradeNo, err := sng.TradeNo("ORDER", 500)
	require.NoError(t, err)

	refundNo := sng.RefundNo(tradeNo)
	assert.Equal(t, RefundNoLength, len(refundNo))
	assert.True(t, strings.HasPrefix(refundNo, tradeNo+"-"))
	// 31 位随机串需要拼接两次 shortuuid
	assert.Equal(t, 31, len(strings.TrimPrefix(refundNo, tradeNo+"-")))
}

func TestGenerateTradeNo(t *testing.T) {
	sn, err := NewGenerator().TradeNo("ORDER", 500)
	require.NoError(t, err)
	assert.Equal(t, TradeNoLength, len(sn))
	assert.Regexp(t, regexp.MustCompile(`^ORDER\d{14}M500-[0-9A-Za-z]{8}$`), sn)
}
