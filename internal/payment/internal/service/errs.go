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

package service

import (
	"errors"
	"fmt"

	"github.com/ecodeclub/minipay/internal/payment/internal/repository"
)

var (
	ErrInvalidArgument = errors.New("请求参数非法")
	ErrAmountInvalid   = fmt.Errorf("%w: 支付金额非法", ErrInvalidArgument)

	ErrGatewayRejected = errors.New("支付网关拒绝了请求")
	ErrRefundRejected  = fmt.Errorf("%w: 退款失败", ErrGatewayRejected)

	ErrOrderNotFound            = repository.ErrPaymentNotFound
	ErrNotPaidOrAlreadyRefunded = errors.New("该记录未支付或者已退款")
	// ErrAmbiguousOutcome 调用支付网关超时，既不能当成功也不能当失败，只能等对账
	ErrAmbiguousOutcome = errors.New("支付网关调用结果未知")
)
