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
	"errors"
	"fmt"
	"math"

	"github.com/ecodeclub/minipay/internal/payment/internal/domain"
	"github.com/ecodeclub/minipay/internal/pkg/sequencenumber"
	"github.com/gotomicro/ego/core/elog"
)

func (s *paymentService) Initiate(ctx context.Context, req domain.InitiateRequest) (domain.Prepay, error) {
	amount, err := s.normalizeAmount(req.Amount)
	if err != nil {
		return domain.Prepay{}, err
	}
	if req.UserID == "" {
		return domain.Prepay{}, fmt.Errorf("%w: 缺少用户信息", ErrInvalidArgument)
	}

	tradeNo, err := s.sn.TradeNo(req.BizType, amount)
	if errors.Is(err, sequencenumber.ErrInvalidPrefix) {
		return domain.Prepay{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if err != nil {
		return domain.Prepay{}, err
	}

	desc := truncate(req.Description, s.cfg.DescriptionLimit)
	res, err := s.gateway.CreateOrder(ctx, domain.PrepayRequest{
		TradeNo:     tradeNo,
		Description: desc,
		Amount:      amount,
		UserID:      req.UserID,
		ClientIP:    s.cfg.ClientIP,
		Attach:      s.cfg.Attach,
		NotifyURL:   s.cfg.NotifyURL,
		ExpireAt:    s.nowFunc().Add(s.cfg.Expiry()),
	})
	if err != nil {
		s.l.Error("微信预支付结果未知",
			elog.FieldErr(err),
			elog.String("trade_no", tradeNo))
		return domain.Prepay{}, fmt.Errorf("微信预支付失败: %w", err)
	}
	if !res.OK() || res.PrepayID == "" {
		s.l.Error("微信预支付失败",
			elog.String("trade_no", tradeNo),
			elog.String("code", res.Code),
			elog.String("message", res.Message),
			elog.Any("raw", res.Raw))
		return domain.Prepay{}, fmt.Errorf("%w: 微信预支付失败 %s", ErrGatewayRejected, res.Message)
	}
	s.l.Info("微信预支付成功",
		elog.String("trade_no", tradeNo),
		elog.Any("raw", res.Raw))

	_, err = s.repo.Create(ctx, domain.PaymentOrder{
		TradeNo:     tradeNo,
		Status:      domain.PaymentStatusPending,
		TotalFee:    amount,
		Nonce:       res.Params.NonceStr,
		PrepayID:    res.PrepayID,
		Description: desc,
		Detail:      req.Detail,
		BizType:     req.BizType,
		Attach:      s.cfg.Attach,
		UserID:      req.UserID,
	})
	if err != nil {
		return domain.Prepay{}, fmt.Errorf("保存支付记录失败: %w", err)
	}
	return domain.Prepay{
		TradeNo: tradeNo,
		Params:  res.Params,
		Amount:  amount,
	}, nil
}

func (s *paymentService) normalizeAmount(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, ErrAmountInvalid
	}
	rounded := math.Round(amount)
	if rounded <= 0 || rounded > float64(s.cfg.AmountCeiling) {
		return 0, fmt.Errorf("%w: %v", ErrAmountInvalid, amount)
	}
	if s.cfg.Sandbox {
		return SandboxAmount, nil
	}
	return int64(rounded), nil
}

func truncate(val string, limit int) string {
	runes := []rune(val)
	if len(runes) <= limit {
		return val
	}
	return string(runes[:limit])
}
