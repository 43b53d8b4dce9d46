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
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/minipay/internal/payment/internal/errs"
	"github.com/ecodeclub/minipay/internal/payment/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	closeFailedResult = ginx.Result{
		Code: errs.CloseOrderFailedError.Code,
		Msg:  errs.CloseOrderFailedError.Msg,
	}
)

func errorResult(err error) ginx.Result {
	var code errs.ErrorCode
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		code = errs.InvalidArgumentError
	case errors.Is(err, service.ErrOrderNotFound):
		code = errs.OrderNotFoundError
	case errors.Is(err, service.ErrNotPaidOrAlreadyRefunded):
		code = errs.NotPaidOrRefundedError
	case errors.Is(err, service.ErrAmbiguousOutcome):
		code = errs.AmbiguousOutcomeError
	case errors.Is(err, service.ErrGatewayRejected):
		code = errs.GatewayRejectedError
	default:
		return systemErrorResult
	}
	return ginx.Result{Code: code.Code, Msg: code.Msg}
}
