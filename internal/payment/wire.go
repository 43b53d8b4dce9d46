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

//go:build wireinject

package payment

import (
	"sync"
	"time"

	"github.com/ecodeclub/minipay/internal/payment/internal/consumer"
	"github.com/ecodeclub/minipay/internal/payment/internal/event"
	"github.com/ecodeclub/minipay/internal/payment/internal/job"
	"github.com/ecodeclub/minipay/internal/payment/internal/repository"
	"github.com/ecodeclub/minipay/internal/payment/internal/repository/dao"
	"github.com/ecodeclub/minipay/internal/payment/internal/service"
	"github.com/ecodeclub/minipay/internal/payment/internal/web"
	"github.com/ecodeclub/minipay/internal/pkg/sequencenumber"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var repositorySet = wire.NewSet(
	InitTablesOnce,
	dao.NewSettlementGORMDAO,
	repository.NewPaymentRepository,
)

// InitService 支付服务先于业务模块初始化，业务模块再反过来提供 SettlementHook
func InitService(db *egorm.Component,
	q mq.MQ,
	users UserDirectory,
	gateway Gateway,
	cfg Config) (Service, error) {
	wire.Build(
		repositorySet,
		event.NewSettlementEventProducer,
		sequencenumber.NewGenerator,
		service.NewService,
	)
	return nil, nil
}

func InitModule(db *egorm.Component,
	q mq.MQ,
	svc Service,
	hook SettlementHook,
	locator BusinessLocator,
	notify NotifyHandler,
	cfg Config) (*Module, error) {
	wire.Build(
		repositorySet,
		service.NewSettlementDispatcher,
		consumer.NewSettlementEventConsumer,
		newExpireSweepJob,
		newSettlementRetryJob,
		newHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.PaymentDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewPaymentGORMDAO(db)
}

func newHandler(notify NotifyHandler, svc Service, cfg Config) *Handler {
	return web.NewHandler(notify, svc, cfg.Sandbox)
}

func newExpireSweepJob(svc Service, locator BusinessLocator, cfg Config) *ExpireSweepJob {
	return job.NewExpireSweepJob(svc, locator, cfg.WithDefaults().Expiry()+expireGracePeriod, sweepBatchSize)
}

func newSettlementRetryJob(dispatcher *service.SettlementDispatcher) *SettlementRetryJob {
	return job.NewSettlementRetryJob(dispatcher, sweepBatchSize)
}

const (
	expireGracePeriod = 5 * time.Minute
	sweepBatchSize    = 100
)
