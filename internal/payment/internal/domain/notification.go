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

import (
	"fmt"
	"time"
)

// Notification 微信的支付结果通知，可能重复投递
type Notification struct {
	OutTradeNo    string `json:"outTradeNo"`
	TotalFee      int64  `json:"totalFee"`
	TransportOK   bool   `json:"transportOk"`
	BusinessOK    bool   `json:"businessOk"`
	TransactionID string `json:"transactionId"`
	EndTime       string `json:"endTime"`
	Raw           any    `json:"-"`
}

func (n Notification) Success() bool {
	return n.TransportOK && n.BusinessOK
}

// NotifyAck 无论处理结果如何都返回这个，不然微信会持续重试
type NotifyAck struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var SuccessAck = NotifyAck{Code: "SUCCESS", Message: "成功"}

const gatewayTimeLayout = "20060102150405"

// GatewayLocation 微信返回的时间都是北京时间
var GatewayLocation = time.FixedZone("CST", 8*3600)

// ParseGatewayTime 把 20230101120000 这种格式解析为毫秒时间戳
func ParseGatewayTime(val string) (int64, error) {
	if len(val) != len(gatewayTimeLayout) {
		return 0, fmt.Errorf("时间格式非法 %q", val)
	}
	t, err := time.ParseInLocation(gatewayTimeLayout, val, GatewayLocation)
	if err != nil {
		return 0, fmt.Errorf("时间格式非法 %q: %w", val, err)
	}
	return t.UnixMilli(), nil
}

func FormatGatewayTime(t time.Time) string {
	return t.In(GatewayLocation).Format(gatewayTimeLayout)
}
