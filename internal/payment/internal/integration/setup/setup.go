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

	"github.com/ecodeclub/minipay/internal/payment"
	"github.com/ecodeclub/minipay/internal/payment/internal/repository/dao"
	"github.com/ecodeclub/minipay/internal/payment/internal/service/wechat"
	testioc "github.com/ecodeclub/minipay/internal/test/ioc"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/require"
)

type Deps struct {
	JSAPI   wechat.JSAPIService
	Refund  wechat.RefundService
	Notify  payment.NotifyHandler
	Users   payment.UserDirectory
	Hook    payment.SettlementHook
	Locator payment.BusinessLocator
}

func InitConfig() payment.Config {
	return payment.Config{
		Sandbox:   true,
		NotifyURL: "https://example.com/pay/callback",
	}
}

// InitModule 每个测试都用一个新的库
func InitModule(t *testing.T, deps Deps) (*payment.Module, *egorm.Component, mq.MQ) {
	db := testioc.NewDB(t)
	require.NoError(t, dao.InitTables(db))
	q := testioc.NewMQ(t)
	cfg := InitConfig()
	gateway := wechat.NewGateway(deps.JSAPI, deps.Refund, "MockAPPID", "MockMchID")
	svc, err := payment.InitService(db, q, deps.Users, gateway, cfg)
	require.NoError(t, err)
	m, err := payment.InitModule(db, q, svc, deps.Hook, deps.Locator, deps.Notify, cfg)
	require.NoError(t, err)
	return m, db, q
}
