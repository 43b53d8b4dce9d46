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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/minipay/internal/enrollment"
	"github.com/ecodeclub/minipay/internal/payment"
	"github.com/ecodeclub/minipay/internal/pkg/middleware"
	"github.com/ecodeclub/minipay/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
)

type AdminServer *egin.Component

func InitAdminServer(payAdmin *payment.AdminHandler,
	enrollAdmin *enrollment.AdminHandler,
) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(middleware.NewMetricsBuilder("admin").Build())
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"X-Timestamp", "Authorization", "Content-Type"},
		AllowOriginFunc:  allowOrigin(econf.GetStringSlice("admin.allowOrigins")),
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	res.Use(AdminPermission(econf.GetStringSlice("admin.openIds")))
	payAdmin.PrivateRoutes(res.Engine)
	enrollAdmin.PrivateRoutes(res.Engine)
	return res
}

// AdminPermission 只有配置了的小程序用户才能访问管理后台
func AdminPermission(openIds []string) gin.HandlerFunc {
	admins := make(map[string]struct{}, len(openIds))
	for _, id := range openIds {
		admins[id] = struct{}{}
	}
	return func(ctx *gin.Context) {
		xctx := &ginx.Context{Context: ctx}
		sess, err := session.Get(xctx)
		if err != nil {
			ctx.AbortWithStatus(http.StatusInternalServerError)
			elog.Error("非法访问 admin 接口", elog.FieldErr(err))
			return
		}
		openId := sess.Claims().Get(user.OpenIdKey).StringOrDefault("")
		if _, ok := admins[openId]; !ok {
			ctx.AbortWithStatus(http.StatusForbidden)
			elog.Error("非法访问 admin 接口，未设置权限", elog.String("openid", openId))
			return
		}
	}
}
