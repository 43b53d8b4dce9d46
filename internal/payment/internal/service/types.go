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
	"time"

	"github.com/ecodeclub/minipay/internal/payment/internal/domain"
)

// Gateway 支付网关
// 返回的 error 只用来表达超时这种结果未知的情况，也就是 ErrAmbiguousOutcome，
// 其余失败都体现在 TransportOK 和 BusinessOK 上
//
//go:generate mockgen -source=./types.go -package=svcmocks -destination=mocks/types.mock.go Gateway SettlementHook BusinessLocator UserDirectory
type Gateway interface {
	CreateOrder(ctx context.Context, req domain.PrepayRequest) (domain.PrepayResult, error)
	QueryOrder(ctx context.Context, tradeNo string) (domain.TradeQueryResult, error)
	Refund(ctx context.Context, req domain.RefundRequest) (domain.RefundResult, error)
	CloseOrder(ctx context.Context, tradeNo string) (domain.GatewayResult, error)
}

// SettlementHook 支付成功之后由业务方实现的结算逻辑
// 每个订单只会成功执行一次，但是在进程崩溃等情况下可能会被重复调用，实现者需要保证幂等
type SettlementHook interface {
	Settle(ctx context.Context, tradeNo string, paidAt int64) error
}

// BusinessLocator 判断某个订单号是否有对应的业务记录
type BusinessLocator interface {
	HasBusinessRecord(ctx context.Context, tradeNo string) (bool, error)
}

// UserDirectory 后台按照手机号查询用户
type UserDirectory interface {
	// FindUserIDByMobile 找不到的时候返回空字符串
	FindUserIDByMobile(ctx context.Context, mobile string) (string, error)
}

type Config struct {
	// 单位分
	AmountCeiling int64 `yaml:"amountCeiling"`
	// 沙箱模式下所有订单的金额都是 SandboxAmount
	Sandbox          bool   `yaml:"sandbox"`
	ExpireSeconds    int64  `yaml:"expireSeconds"`
	DescriptionLimit int    `yaml:"descriptionLimit"`
	ClientIP         string `yaml:"clientIP"`
	// 透传到微信的附加数据
	Attach    string `yaml:"attach"`
	NotifyURL string `yaml:"notifyURL"`
}

const (
	DefaultAmountCeiling    int64 = 10_000_000
	SandboxAmount           int64 = 2
	DefaultExpireSeconds    int64 = 300
	MinExpireSeconds        int64 = 60
	DefaultDescriptionLimit       = 127
	DefaultClientIP               = "127.0.0.1"
)

// WithDefaults 补齐默认值
func (c Config) WithDefaults() Config {
	if c.AmountCeiling <= 0 {
		c.AmountCeiling = DefaultAmountCeiling
	}
	if c.ExpireSeconds <= 0 {
		c.ExpireSeconds = DefaultExpireSeconds
	}
	if c.ExpireSeconds < MinExpireSeconds {
		c.ExpireSeconds = MinExpireSeconds
	}
	if c.DescriptionLimit <= 0 {
		c.DescriptionLimit = DefaultDescriptionLimit
	}
	if c.ClientIP == "" {
		c.ClientIP = DefaultClientIP
	}
	return c
}

func (c Config) Expiry() time.Duration {
	return time.Duration(c.ExpireSeconds) * time.Second
}
