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

package startup

import (
	"testing"

	"github.com/ecodeclub/minipay/internal/enrollment"
	"github.com/ecodeclub/minipay/internal/enrollment/internal/event"
	"github.com/ecodeclub/minipay/internal/enrollment/internal/repository"
	"github.com/ecodeclub/minipay/internal/enrollment/internal/repository/dao"
	"github.com/ecodeclub/minipay/internal/enrollment/internal/service"
	"github.com/ecodeclub/minipay/internal/enrollment/internal/web"
	"github.com/ecodeclub/minipay/internal/payment"
	testioc "github.com/ecodeclub/minipay/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/require"
)

func InitModule(t *testing.T, paymentSvc payment.Service, cfg enrollment.Config) (*enrollment.Module, *egorm.Component) {
	db := testioc.NewDB(t)
	require.NoError(t, dao.InitTables(db))
	producer, err := event.NewEnrollmentPaidEventProducer(testioc.NewMQ(t))
	require.NoError(t, err)
	svc := service.NewService(repository.NewEnrollmentRepository(dao.NewEnrollmentGORMDAO(db)), paymentSvc, producer, cfg)
	return &enrollment.Module{
		Svc:      svc,
		Hook:     svc,
		Locator:  svc,
		Hdl:      web.NewHandler(svc),
		AdminHdl: web.NewAdminHandler(svc),
	}, db
}
