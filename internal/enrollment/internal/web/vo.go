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

package web

import (
	"github.com/ecodeclub/minipay/internal/enrollment/internal/domain"
	"github.com/ecodeclub/minipay/internal/payment"
)

type JoinReq struct {
	ActivityId int64  `json:"activityId"`
	UserName   string `json:"userName"`
	Mobile     string `json:"mobile"`
}

type JoinResp struct {
	Enrollment Enrollment `json:"enrollment"`
	// 小程序调起支付需要的参数
	Payment payment.PaymentParams `json:"payment"`
}

type ListReq struct {
	// 为 0 的时候查询全部活动
	ActivityId int64 `json:"activityId"`
	Offset     int   `json:"offset"`
	Limit      int   `json:"limit"`
}

type ListResp struct {
	Total int64        `json:"total"`
	List  []Enrollment `json:"list"`
}

type StatReq struct {
	ActivityId int64 `json:"activityId"`
}

type StatResp struct {
	JoinCount int64 `json:"joinCount"`
	PaidCount int64 `json:"paidCount"`
	PaidFee   int64 `json:"paidFee"`
}

type Enrollment struct {
	Id         int64  `json:"id"`
	ActivityId int64  `json:"activityId"`
	UserId     string `json:"userId"`
	UserName   string `json:"userName"`
	Mobile     string `json:"mobile"`
	PayTradeNo string `json:"payTradeNo"`
	PayFee     int64  `json:"payFee"`
	Status     uint8  `json:"status"`
	PayStatus  uint8  `json:"payStatus"`
	PayTime    int64  `json:"payTime"`
	Ctime      int64  `json:"ctime"`
}

func newEnrollment(e domain.Enrollment) Enrollment {
	return Enrollment{
		Id:         e.Id,
		ActivityId: e.ActivityId,
		UserId:     e.UserId,
		UserName:   e.UserName,
		Mobile:     e.Mobile,
		PayTradeNo: e.PayTradeNo,
		PayFee:     e.PayFee,
		Status:     e.Status.ToUint8(),
		PayStatus:  e.PayStatus.ToUint8(),
		PayTime:    e.PayTime,
		Ctime:      e.Ctime,
	}
}
