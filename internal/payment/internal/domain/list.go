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

type ListQuery struct {
	// 手机号
	Search   string
	SortType string
	SortVal  string
	Page     int
	Size     int
	// 为 false 的时候不再计算总数，直接返回 OldTotal
	IsTotal  bool
	OldTotal int64
}

type ListResult struct {
	List  []PaymentOrder
	Total int64
}

type Stat struct {
	PaidCount   int64
	PaidFee     int64
	RefundCount int64
	RefundFee   int64
}

// OrderFilter 零值字段表示不过滤
type OrderFilter struct {
	UserID   string
	Statuses []PaymentStatus
	// 创建时间早于该时间，毫秒
	CtimeBefore int64
}

type OrderSortField uint8

const (
	SortByCtime OrderSortField = iota
	SortByTotalFee
)

type OrderSort struct {
	Field OrderSortField
	Desc  bool
}
