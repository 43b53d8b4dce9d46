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

package user

import (
	"github.com/ecodeclub/minipay/internal/pkg/snowflake"
	"github.com/ecodeclub/minipay/internal/user/internal/repository/dao"
	"github.com/ecodeclub/minipay/internal/user/internal/service"
	"github.com/ecodeclub/minipay/internal/user/internal/web"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

type Config struct {
	// NodeId 雪花算法的节点，多实例部署的时候必须不同
	NodeId  int64 `yaml:"nodeId"`
	Sandbox bool  `yaml:"sandbox"`
}

func initConfig() Config {
	var cfg Config
	err := econf.UnmarshalKey("user", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func initHandler(weMiniSvc service.OAuth2Service, userSvc service.UserService, cfg Config) *Handler {
	return web.NewHandler(weMiniSvc, userSvc, cfg.Sandbox)
}

func initWechatMiniOAuthService() service.OAuth2Service {
	type Config struct {
		AppID     string `yaml:"appID"`
		AppSecret string `yaml:"appSecret"`
	}
	var cfg Config
	err := econf.UnmarshalKey("wechat.mini", &cfg)
	if err != nil {
		panic(err)
	}
	return service.NewWechatMiniService(cfg.AppID, cfg.AppSecret)
}

func initIDGenerator(cfg Config) (*snowflake.Generator, error) {
	return snowflake.NewGenerator(cfg.NodeId)
}

func initDAO(db *egorm.Component, idGen *snowflake.Generator) dao.UserDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMUserDAO(db, idGen)
}
