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

package ioc

import (
	"github.com/ecodeclub/minipay/internal/enrollment"
	"github.com/ecodeclub/minipay/internal/payment"
	paymentioc "github.com/ecodeclub/minipay/internal/payment/ioc"
	"github.com/ecodeclub/minipay/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

var wechatSet = wire.NewSet(
	paymentioc.InitWechatConfig,
	paymentioc.InitWechatClient,
	paymentioc.InitGateway,
	paymentioc.InitWechatNotifyHandler,
	paymentioc.InitPaymentConfig,
)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		wechatSet,
		InitUserModule,
		InitPaymentService,
		InitEnrollmentModule,
		InitPaymentModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		wire.FieldsOf(new(*payment.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*enrollment.Module), "Hdl", "AdminHdl"),
		InitSession,
		initGinxServer,
		InitAdminServer,
		initCronJobs,
		initMQConsumers,
	)
	return new(App), nil
}
