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

import "time"

// 微信侧的交易状态
const (
	TradeStateSuccess = "SUCCESS"
	TradeStateNotPay  = "NOTPAY"
	TradeStateRefund  = "REFUND"
	TradeStateClosed  = "CLOSED"
)

var tradeState2PaymentStatus = map[string]PaymentStatus{
	TradeStateSuccess: PaymentStatusSuccess,
	TradeStateNotPay:  PaymentStatusNotPaid,
	TradeStateRefund:  PaymentStatusRefund,
	TradeStateClosed:  PaymentStatusClosed,
}

// StatusOfTradeState 其余状态，比如 USERPAYING、PAYERROR、REVOKED 一律按照失败处理
func StatusOfTradeState(state string) PaymentStatus {
	status, ok := tradeState2PaymentStatus[state]
	if !ok {
		return PaymentStatusFail
	}
	return status
}

// GatewayResult 每次调用支付网关的结果
// 只有 TransportOK 和 BusinessOK 都为 true 才算成功
type GatewayResult struct {
	TransportOK bool
	BusinessOK  bool
	Code        string
	Message     string
	// 原始响应，只用于记录日志和留档
	Raw any
}

func (r GatewayResult) OK() bool {
	return r.TransportOK && r.BusinessOK
}

type PrepayRequest struct {
	TradeNo     string
	Description string
	Amount      int64
	UserID      string
	ClientIP    string
	Attach      string
	NotifyURL   string
	ExpireAt    time.Time
}

type PrepayResult struct {
	GatewayResult
	PrepayID string
	Params   PaymentParams
}

type TradeQueryResult struct {
	GatewayResult
	TradeState    string
	TransactionID string
	// 14 位的时间字符串 20060102150405
	EndTime  string
	TotalFee int64
}

type RefundRequest struct {
	TradeNo  string
	RefundNo string
	Amount   int64
	Total    int64
	Reason   string
}

type RefundResult struct {
	GatewayResult
	RefundID string
}
