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

package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/minipay/internal/enrollment/internal/domain"
	"github.com/ecodeclub/minipay/internal/enrollment/internal/service"
	"github.com/gin-gonic/gin"
)

// OpenIdKey 登录的时候写入 jwt 的小程序 openid
const OpenIdKey = "openid"

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/enrollment")
	g.POST("/join", ginx.BS[JoinReq](h.Join))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// Join 报名并且发起缴费
func (h *Handler) Join(ctx *ginx.Context, req JoinReq, sess session.Session) (ginx.Result, error) {
	e, prepay, err := h.svc.Join(ctx.Request.Context(), domain.JoinRequest{
		ActivityId: req.ActivityId,
		UserId:     sess.Claims().Get(OpenIdKey).StringOrDefault(""),
		UserName:   req.UserName,
		Mobile:     req.Mobile,
	})
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{
		Data: JoinResp{
			Enrollment: newEnrollment(e),
			Payment:    prepay.Params,
		},
	}, nil
}
