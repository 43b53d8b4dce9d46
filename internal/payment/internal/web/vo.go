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

import "github.com/ecodeclub/minipay/internal/payment/internal/domain"

type ListReq struct {
	// 用户手机号
	Search   string `json:"search"`
	SortType string `json:"sortType"`
	SortVal  string `json:"sortVal"`
	Page     int    `json:"page"`
	Size     int    `json:"size"`
	// 为 false 的时候不重新计算总数，直接返回 OldTotal
	IsTotal  bool  `json:"isTotal"`
	OldTotal int64 `json:"oldTotal"`
}

type ListResp struct {
	Total int64     `json:"total"`
	List  []Payment `json:"list"`
}

type StatReq struct {
	UserID string `json:"userId"`
}

type StatResp struct {
	PaidCount   int64 `json:"paidCount"`
	PaidFee     int64 `json:"paidFee"`
	RefundCount int64 `json:"refundCount"`
	RefundFee   int64 `json:"refundFee"`
}

type TradeNoReq struct {
	TradeNo string `json:"tradeNo"`
}

type RefundReq struct {
	TradeNo string `json:"tradeNo"`
	Desc    string `json:"desc"`
}

type QueryResp struct {
	Payment Payment `json:"payment"`
	// 微信那边是否已经支付成功
	Paid bool `json:"paid"`
}

type Payment struct {
	ID            int64  `json:"id"`
	TradeNo       string `json:"tradeNo"`
	Status        uint8  `json:"status"`
	StatusDesc    string `json:"statusDesc"`
	TotalFee      int64  `json:"totalFee"`
	Description   string `json:"description"`
	BizType       string `json:"bizType"`
	UserID        string `json:"userId"`
	TransactionID string `json:"transactionId"`
	EndTime       int64  `json:"endTime"`
	RefundID      string `json:"refundId,omitempty"`
	OutRefundNo   string `json:"outRefundNo,omitempty"`
	RefundTime    int64  `json:"refundTime,omitempty"`
	RefundDesc    string `json:"refundDesc,omitempty"`
	Ctime         int64  `json:"ctime"`
	Utime         int64  `json:"utime"`
}

func newPayment(o domain.PaymentOrder) Payment {
	return Payment{
		ID:            o.ID,
		TradeNo:       o.TradeNo,
		Status:        o.Status.ToUint8(),
		StatusDesc:    o.Status.String(),
		TotalFee:      o.TotalFee,
		Description:   o.Description,
		BizType:       o.BizType,
		UserID:        o.UserID,
		TransactionID: o.TransactionID,
		EndTime:       o.EndTime,
		RefundID:      o.Refund.RefundID,
		OutRefundNo:   o.Refund.OutRefundNo,
		RefundTime:    o.Refund.RefundTime,
		RefundDesc:    o.Refund.Desc,
		Ctime:         o.Ctime,
		Utime:         o.Utime,
	}
}
