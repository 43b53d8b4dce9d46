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

package event

import "context"

const SettlementEventTopic = "payment_settlement_events"

// SettlementEvent 订单支付成功，需要执行结算
// 只是一个加速信号，丢失了也会被结算重试任务兜底
type SettlementEvent struct {
	TradeNo string `json:"tradeNo"`
	PaidAt  int64  `json:"paidAt"`
}

// MessageKey 同一个订单的消息落在同一个分区
func (e SettlementEvent) MessageKey() string {
	return e.TradeNo
}

//go:generate mockgen -source=./types.go -package=evtmocks -destination=mocks/types.mock.go SettlementEventProducer
type SettlementEventProducer interface {
	Produce(ctx context.Context, evt SettlementEvent) error
}
