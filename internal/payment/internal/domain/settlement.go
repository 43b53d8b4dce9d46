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

type SettlementStatus uint8

func (s SettlementStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	SettlementStatusUnknown SettlementStatus = iota
	SettlementStatusPending
	SettlementStatusRunning
	SettlementStatusDone
)

// SettlementTask 支付成功之后需要执行的结算任务，和状态变更在同一个事务里面写入
type SettlementTask struct {
	ID       int64
	TradeNo  string
	PaidAt   int64
	Status   SettlementStatus
	Attempts int
	// Pending 状态下是下一次可以执行的时间，Running 状态下是租约到期时间
	NextRunAt int64
	LastErr   string
}
