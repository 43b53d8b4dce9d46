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

package payment

import (
	"github.com/ecodeclub/minipay/internal/payment/internal/consumer"
	"github.com/ecodeclub/minipay/internal/payment/internal/domain"
	"github.com/ecodeclub/minipay/internal/payment/internal/job"
	"github.com/ecodeclub/minipay/internal/payment/internal/service"
	"github.com/ecodeclub/minipay/internal/payment/internal/web"
)

type (
	Handler                 = web.Handler
	AdminHandler            = web.AdminHandler
	NotifyHandler           = web.NotifyHandler
	Service                 = service.Service
	Gateway                 = service.Gateway
	SettlementHook          = service.SettlementHook
	BusinessLocator         = service.BusinessLocator
	UserDirectory           = service.UserDirectory
	Config                  = service.Config
	ExpireSweepJob          = job.ExpireSweepJob
	SettlementRetryJob      = job.SettlementRetryJob
	SettlementEventConsumer = consumer.SettlementEventConsumer

	PaymentOrder    = domain.PaymentOrder
	Status          = domain.PaymentStatus
	InitiateRequest = domain.InitiateRequest
	Prepay          = domain.Prepay
	PaymentParams   = domain.PaymentParams
	Notification    = domain.Notification
)

const (
	StatusPending = domain.PaymentStatusPending
	StatusSuccess = domain.PaymentStatusSuccess
	StatusNotPaid = domain.PaymentStatusNotPaid
	StatusFail    = domain.PaymentStatusFail
	StatusRefund  = domain.PaymentStatusRefund
	StatusClosed  = domain.PaymentStatusClosed
)

var (
	ErrInvalidArgument          = service.ErrInvalidArgument
	ErrAmountInvalid            = service.ErrAmountInvalid
	ErrGatewayRejected          = service.ErrGatewayRejected
	ErrRefundRejected           = service.ErrRefundRejected
	ErrOrderNotFound            = service.ErrOrderNotFound
	ErrNotPaidOrAlreadyRefunded = service.ErrNotPaidOrAlreadyRefunded
	ErrAmbiguousOutcome         = service.ErrAmbiguousOutcome
)

type Module struct {
	Svc                Service
	Hdl                *Handler
	AdminHdl           *AdminHandler
	ExpireSweepJob     *ExpireSweepJob
	SettlementRetryJob *SettlementRetryJob
	SettlementConsumer *SettlementEventConsumer
}
