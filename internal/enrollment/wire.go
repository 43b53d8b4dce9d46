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

package enrollment

import (
	"sync"

	"github.com/ecodeclub/minipay/internal/enrollment/internal/event"
	"github.com/ecodeclub/minipay/internal/enrollment/internal/repository"
	"github.com/ecodeclub/minipay/internal/enrollment/internal/repository/dao"
	"github.com/ecodeclub/minipay/internal/enrollment/internal/service"
	"github.com/ecodeclub/minipay/internal/enrollment/internal/web"
	"github.com/ecodeclub/minipay/internal/payment"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	paymentSvc payment.Service,
	cfg Config) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewEnrollmentRepository,
		event.NewEnrollmentPaidEventProducer,
		service.NewService,
		newHandler,
		newAdminHandler,
		newModule,
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.EnrollmentDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewEnrollmentGORMDAO(db)
}

func newHandler(svc service.EnrollmentService) *Handler {
	return web.NewHandler(svc)
}

func newAdminHandler(svc service.EnrollmentService) *AdminHandler {
	return web.NewAdminHandler(svc)
}

func newModule(svc service.EnrollmentService, hdl *Handler, adminHdl *AdminHandler) *Module {
	return &Module{
		Svc:      svc,
		Hook:     svc,
		Locator:  svc,
		Hdl:      hdl,
		AdminHdl: adminHdl,
	}
}
