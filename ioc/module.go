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

package ioc

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/minipay/internal/enrollment"
	"github.com/ecodeclub/minipay/internal/payment"
	"github.com/ecodeclub/minipay/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

// 初始化顺序: 用户 -> 支付服务 -> 报名 -> 支付模块
// 支付模块的结算依赖报名，报名又依赖支付服务

func InitUserModule(db *egorm.Component, ec ecache.Cache) *user.Module {
	m, err := user.InitModule(db, ec)
	if err != nil {
		panic(err)
	}
	return m
}

func InitPaymentService(db *egorm.Component,
	q mq.MQ,
	um *user.Module,
	gateway payment.Gateway,
	cfg payment.Config) payment.Service {
	svc, err := payment.InitService(db, q, um.Svc, gateway, cfg)
	if err != nil {
		panic(err)
	}
	return svc
}

func InitEnrollmentModule(db *egorm.Component, q mq.MQ, paymentSvc payment.Service) *enrollment.Module {
	var cfg enrollment.Config
	err := econf.UnmarshalKey("enrollment", &cfg)
	if err != nil {
		panic(err)
	}
	m, err := enrollment.InitModule(db, q, paymentSvc, cfg)
	if err != nil {
		panic(err)
	}
	return m
}

func InitPaymentModule(db *egorm.Component,
	q mq.MQ,
	svc payment.Service,
	em *enrollment.Module,
	notify payment.NotifyHandler,
	cfg payment.Config) *payment.Module {
	m, err := payment.InitModule(db, q, svc, em.Hook, em.Locator, notify, cfg)
	if err != nil {
		panic(err)
	}
	return m
}
