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
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

const (
	// TradeNoLength 微信要求商户订单号 6-32 位
	TradeNoLength = 32
	// RefundNoLength 微信要求商户退款单号不超过 64 位
	RefundNoLength = 64
	minSuffixLen   = 3
	timeLayout     = "20060102150405"
)

var ErrInvalidPrefix = errors.New("订单号前缀非法")

// NowFunc 定义获取当前时间的函数类型
type NowFunc func() time.Time

// ShortUUIDGenerateFunc 定义生成ShortUUID的函数类型
type ShortUUIDGenerateFunc func() string

type Generator struct {
	nowFunc          NowFunc
	shortUUIDGenFunc ShortUUIDGenerateFunc
	loc              *time.Location
}

// NewGeneratorWith 创建一个Generator实例
func NewGeneratorWith(now NowFunc, uuidGen ShortUUIDGenerateFunc, loc *time.Location) *Generator {
	return &Generator{
		nowFunc:          now,
		shortUUIDGenFunc: uuidGen,
		loc:              loc,
	}
}

// NewGenerator 订单号里面的时间使用北京时间
func NewGenerator() *Generator {
	return NewGeneratorWith(time.Now, shortuuid.New, time.FixedZone("CST", 8*3600))
}

// TradeNo 业务类型 + 14 位时间 + M + 金额 + - + 随机串，凑够 32 位
// 唯一性最终依赖数据库的唯一索引
func (s *Generator) TradeNo(bizType string, amount int64) (string, error) {
	if bizType == "" || !isAlphanumeric(bizType) {
		return "", fmt.Errorf("%w: 业务类型 %q", ErrInvalidPrefix, bizType)
	}
	prefix := fmt.Sprintf("%s%sM%d-", bizType, s.nowFunc().In(s.loc).Format(timeLayout), amount)
	if len(prefix) > TradeNoLength-minSuffixLen {
		return "", fmt.Errorf("%w: %s 过长", ErrInvalidPrefix, prefix)
	}
	return prefix + s.suffix(TradeNoLength-len(prefix)), nil
}

// RefundNo 订单号 + - + 随机串，凑够 64 位
func (s *Generator) RefundNo(tradeNo string) string {
	prefix := tradeNo + "-"
	n := RefundNoLength - len(prefix)
	if n <= 0 {
		return prefix[:RefundNoLength]
	}
	return prefix + s.suffix(n)
}

// suffix 一个 shortuuid 只有 22 位，不够就多拼几个
func (s *Generator) suffix(n int) string {
	var sb strings.Builder
	for sb.Len() < n {
		sb.WriteString(s.shortUUIDGenFunc())
	}
	return sb.String()[:n]
}

func isAlphanumeric(val string) bool {
	for _, c := range val {
		if (c < '0' || c > '9') && (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
