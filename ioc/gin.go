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
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/minipay/internal/enrollment"
	"github.com/ecodeclub/minipay/internal/payment"
	"github.com/ecodeclub/minipay/internal/pkg/middleware"
	"github.com/ecodeclub/minipay/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	payHdl *payment.Handler,
	enrollHdl *enrollment.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(middleware.NewMetricsBuilder("web").Build())
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc:  allowOrigin(econf.GetStringSlice("web.allowOrigins")),
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 微信支付回调不需要登录
	payHdl.PublicRoutes(res.Engine)
	userHdl.PublicRoutes(res.Engine)
	enrollHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	payHdl.PrivateRoutes(res.Engine)
	enrollHdl.PrivateRoutes(res.Engine)
	return res
}

func allowOrigin(domains []string) func(origin string) bool {
	return func(origin string) bool {
		if strings.HasPrefix(origin, "http://localhost") {
			return true
		}
		for _, d := range domains {
			if strings.Contains(origin, d) {
				return true
			}
		}
		return false
	}
}
