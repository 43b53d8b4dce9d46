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

package errs

var (
	InvalidArgumentError   = ErrorCode{Code: 406001, Msg: "参数错误"}
	OrderNotFoundError     = ErrorCode{Code: 406002, Msg: "支付记录不存在"}
	NotPaidOrRefundedError = ErrorCode{Code: 406003, Msg: "该记录未支付或者已退款"}
	GatewayRejectedError   = ErrorCode{Code: 506001, Msg: "微信支付处理失败"}
	AmbiguousOutcomeError  = ErrorCode{Code: 506002, Msg: "微信支付结果未知，请稍后查询"}
	CloseOrderFailedError  = ErrorCode{Code: 506003, Msg: "关闭微信订单失败"}
	SystemError            = ErrorCode{Code: 506004, Msg: "系统错误"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
