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
	"context"

	"github.com/gotomicro/ego/core/elog"
)

func (s *paymentService) Close(ctx context.Context, tradeNo string) bool {
	if tradeNo == "" {
		return true
	}
	res, err := s.gateway.CloseOrder(ctx, tradeNo)
	if err != nil {
		s.l.Error("关闭微信订单结果未知",
			elog.FieldErr(err),
			elog.String("trade_no", tradeNo))
		return false
	}
	if !res.OK() {
		s.l.Error("关闭微信订单失败",
			elog.String("trade_no", tradeNo),
			elog.String("code", res.Code),
			elog.String("message", res.Message),
			elog.Any("raw", res.Raw))
		return false
	}
	s.l.Info("关闭微信订单成功", elog.String("trade_no", tradeNo), elog.Any("raw", res.Raw))

	if _, err = s.FixStatus(ctx, tradeNo); err != nil {
		s.l.Error("关闭微信订单之后对账失败",
			elog.FieldErr(err),
			elog.String("trade_no", tradeNo))
	}
	return true
}
