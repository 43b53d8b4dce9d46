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
	"time"

	"github.com/ecodeclub/minipay/internal/payment/internal/domain"
	"github.com/ecodeclub/minipay/internal/payment/internal/event"
	"github.com/ecodeclub/minipay/internal/payment/internal/repository"
	"github.com/ecodeclub/minipay/internal/pkg/sequencenumber"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./service.go -package=paymentmocks -destination=../../mocks/payment.mock.go Service
type Service interface {
	// Initiate 创建订单并且调用微信预支付
	Initiate(ctx context.Context, req domain.InitiateRequest) (domain.Prepay, error)
	// HandleNotification 处理微信支付通知，永远返回成功应答
	HandleNotification(ctx context.Context, n domain.Notification) domain.NotifyAck
	// QueryStatus 微信那边是否已经支付成功
	QueryStatus(ctx context.Context, tradeNo string) (bool, error)
	// FixStatus 以微信为准修正本地状态，返回修正后是否为支付成功
	FixStatus(ctx context.Context, tradeNo string) (bool, error)
	// Refund 全额退款，strict 为 false 的时候失败只返回 false
	Refund(ctx context.Context, tradeNo string, desc string, strict bool) (bool, error)
	// Close 关闭微信订单，失败不影响业务
	Close(ctx context.Context, tradeNo string) bool

	FindByTradeNo(ctx context.Context, tradeNo string) (domain.PaymentOrder, error)
	List(ctx context.Context, q domain.ListQuery) (domain.ListResult, error)
	Stat(ctx context.Context, userID string) (domain.Stat, error)
	// FindTimeoutOrders 创建时间早于 before 还处于待支付状态的订单
	FindTimeoutOrders(ctx context.Context, before time.Time, offset, limit int) ([]domain.PaymentOrder, error)
}

type paymentService struct {
	repo     repository.PaymentRepository
	gateway  Gateway
	users    UserDirectory
	producer event.SettlementEventProducer
	sn       *sequencenumber.Generator
	cfg      Config
	nowFunc  func() time.Time
	l        *elog.Component
}

func NewService(repo repository.PaymentRepository,
	gateway Gateway,
	users UserDirectory,
	producer event.SettlementEventProducer,
	sn *sequencenumber.Generator,
	cfg Config) Service {
	return &paymentService{
		repo:     repo,
		gateway:  gateway,
		users:    users,
		producer: producer,
		sn:       sn,
		cfg:      cfg.WithDefaults(),
		nowFunc:  time.Now,
		l:        elog.DefaultLogger.With(elog.FieldComponent("PaymentService")),
	}
}

func (s *paymentService) FindByTradeNo(ctx context.Context, tradeNo string) (domain.PaymentOrder, error) {
	return s.repo.FindByTradeNo(ctx, tradeNo)
}

func (s *paymentService) FindTimeoutOrders(ctx context.Context, before time.Time, offset, limit int) ([]domain.PaymentOrder, error) {
	return s.repo.List(ctx, domain.OrderFilter{
		Statuses:    []domain.PaymentStatus{domain.PaymentStatusPending},
		CtimeBefore: before.UnixMilli(),
	}, domain.OrderSort{Field: domain.SortByCtime}, offset, limit)
}
