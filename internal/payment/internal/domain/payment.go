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

type PaymentStatus uint8

func (s PaymentStatus) ToUint8() uint8 {
	return uint8(s)
}

func (s PaymentStatus) String() string {
	switch s {
	case PaymentStatusPending:
		return "待支付"
	case PaymentStatusSuccess:
		return "支付成功"
	case PaymentStatusNotPaid:
		return "未支付"
	case PaymentStatusFail:
		return "支付失败"
	case PaymentStatusRefund:
		return "已退款"
	case PaymentStatusClosed:
		return "已关闭"
	default:
		return "未知状态"
	}
}

const (
	PaymentStatusUnknown PaymentStatus = iota
	PaymentStatusPending
	PaymentStatusSuccess
	PaymentStatusNotPaid
	PaymentStatusFail
	PaymentStatusRefund
	PaymentStatusClosed
)

// PaidTransitionFrom 回调可以把这些状态推进到支付成功
// 对账可能已经先一步把订单标记成未支付或者失败，但是之后微信又通知支付成功
var PaidTransitionFrom = []PaymentStatus{
	PaymentStatusPending,
	PaymentStatusNotPaid,
	PaymentStatusFail,
	PaymentStatusClosed,
}

// PaymentOrder 一次支付尝试
type PaymentOrder struct {
	ID          int64
	TradeNo     string
	Status      PaymentStatus
	TotalFee    int64
	Nonce       string
	PrepayID    string
	Description string
	Detail      string
	BizType     string
	Attach      string
	// 小程序 openid
	UserID        string
	TransactionID string
	EndTime       int64
	Refund        RefundInfo
	Ctime         int64
	Utime         int64
}

type RefundInfo struct {
	RefundID    string
	OutRefundNo string
	RefundTime  int64
	Desc        string
}

// PaymentParams 小程序端调起支付需要的参数
type PaymentParams struct {
	AppID     string `json:"appId"`
	TimeStamp string `json:"timeStamp"`
	NonceStr  string `json:"nonceStr"`
	Package   string `json:"package"`
	SignType  string `json:"signType"`
	PaySign   string `json:"paySign"`
}

type InitiateRequest struct {
	BizType string
	UserID  string
	// 单位是分，允许前端传小数，会被四舍五入
	Amount      float64
	Description string
	Detail      string
}

type Prepay struct {
	TradeNo string
	Params  PaymentParams
	Amount  int64
}
