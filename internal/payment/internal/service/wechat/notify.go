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

package wechat

import (
	"time"

	"github.com/ecodeclub/minipay/internal/payment/internal/domain"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
)

// ToNotification 解密之后的通知内容
// 能够走到这里说明验签和解密都通过了，所以 TransportOK 恒为 true
func ToNotification(txn *payments.Transaction) domain.Notification {
	n := domain.Notification{
		OutTradeNo:    value(txn.OutTradeNo),
		TransportOK:   true,
		BusinessOK:    value(txn.TradeState) == domain.TradeStateSuccess,
		TransactionID: value(txn.TransactionId),
		Raw:           txn,
	}
	if txn.Amount != nil {
		n.TotalFee = value(txn.Amount.Total)
	}
	if t, err := time.Parse(time.RFC3339, value(txn.SuccessTime)); err == nil {
		n.EndTime = domain.FormatGatewayTime(t)
	}
	return n
}
