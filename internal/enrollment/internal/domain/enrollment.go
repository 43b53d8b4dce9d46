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

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusUnknown Status = iota
	// StatusWait 待审核
	StatusWait
	StatusSucc
	StatusCancel
)

// ActiveStatuses 待审核和报名成功的记录才可以付费
var ActiveStatuses = []Status{StatusWait, StatusSucc}

type PayStatus uint8

func (s PayStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	PayStatusUnpaid PayStatus = 0
	PayStatusPaid   PayStatus = 1
)

// Enrollment 活动报名记录
type Enrollment struct {
	Id         int64
	ActivityId int64
	// 小程序 openid
	UserId   string
	UserName string
	Mobile   string
	// 对应的支付订单号
	PayTradeNo string
	// 单位分
	PayFee    int64
	Status    Status
	PayStatus PayStatus
	PayTime   int64
	Ctime     int64
	Utime     int64
}

func (e Enrollment) Paid() bool {
	return e.PayStatus == PayStatusPaid
}

type Activity struct {
	Id    int64  `yaml:"id"`
	Title string `yaml:"title"`
	// 单位分
	Fee int64 `yaml:"fee"`
}

type JoinRequest struct {
	ActivityId int64
	UserId     string
	UserName   string
	Mobile     string
}

// ActivityStat 活动报名统计
type ActivityStat struct {
	JoinCount int64
	PaidCount int64
	PaidFee   int64
}
