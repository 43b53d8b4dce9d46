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

package enrollment

import (
	"github.com/ecodeclub/minipay/internal/enrollment/internal/domain"
	"github.com/ecodeclub/minipay/internal/enrollment/internal/event"
	"github.com/ecodeclub/minipay/internal/enrollment/internal/service"
	"github.com/ecodeclub/minipay/internal/enrollment/internal/web"
	"github.com/ecodeclub/minipay/internal/payment"
)

type (
	Handler             = web.Handler
	AdminHandler        = web.AdminHandler
	Service             = service.Service
	Config              = service.Config
	Activity            = domain.Activity
	Enrollment          = domain.Enrollment
	EnrollmentPaidEvent = event.EnrollmentPaidEvent
)

const EnrollmentPaidTopic = event.EnrollmentPaidTopic

type Module struct {
	Svc Service
	// 交给支付模块使用
	Hook     payment.SettlementHook
	Locator  payment.BusinessLocator
	Hdl      *Handler
	AdminHdl *AdminHandler
}
