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

	"github.com/ecodeclub/minipay/internal/pkg/snowflake"
	testioc "github.com/ecodeclub/minipay/internal/test/ioc"
	"github.com/ecodeclub/minipay/internal/user"
	"github.com/ecodeclub/minipay/internal/user/internal/repository"
	"github.com/ecodeclub/minipay/internal/user/internal/repository/cache"
	"github.com/ecodeclub/minipay/internal/user/internal/repository/dao"
	"github.com/ecodeclub/minipay/internal/user/internal/service"
	"github.com/ecodeclub/minipay/internal/user/internal/web"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/require"
)

func InitHandler(t *testing.T, weMiniSvc service.OAuth2Service, c cache.UserCache) (*user.Handler, *egorm.Component) {
	db := testioc.NewDB(t)
	require.NoError(t, dao.InitTables(db))
	g, err := snowflake.NewGenerator(1)
	require.NoError(t, err)
	repo := repository.NewCachedUserRepository(dao.NewGORMUserDAO(db, g), c)
	return web.NewHandler(weMiniSvc, service.NewUserService(repo), true), db
}
