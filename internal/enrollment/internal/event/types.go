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

const EnrollmentPaidTopic = "enrollment_paid_events"

// EnrollmentPaidEvent 报名缴费成功
type EnrollmentPaidEvent struct {
	EnrollmentId int64  `json:"enrollmentId"`
	ActivityId   int64  `json:"activityId"`
	UserId       string `json:"userId"`
	TradeNo      string `json:"tradeNo"`
	PayFee       int64  `json:"payFee"`
	PaidAt       int64  `json:"paidAt"`
}

func (e EnrollmentPaidEvent) MessageKey() string {
	return e.TradeNo
}
