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
	"github.com/ecodeclub/minipay/internal/user/internal/domain"
	"github.com/ecodeclub/minipay/internal/user/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// OpenIdKey 登录之后把小程序 openid 放进 jwt 里面，下单的时候直接用
const OpenIdKey = "openid"

var _ ginx.Handler = &Handler{}

type Handler struct {
	weMiniSvc service.OAuth2Service
	userSvc   service.UserService
	// 沙箱模式下开放模拟登录
	sandbox bool
	logger  *elog.Component
}

func NewHandler(weMiniSvc service.OAuth2Service,
	userSvc service.UserService, sandbox bool) *Handler {
	return &Handler{
		weMiniSvc: weMiniSvc,
		userSvc:   userSvc,
		sandbox:   sandbox,
		logger:    elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/oauth2/wechat/mini/callback", ginx.B[WechatMiniLoginReq](h.MiniCallback))
	server.Any("/oauth2/wechat/token/refresh", ginx.W(h.RefreshAccessToken))
	if h.sandbox {
		// 测试环境省略登录过程
		server.POST("/users/mock_login", ginx.B[MockLoginReq](h.MockLogin))
	}
}

func (h *Handler) RefreshAccessToken(ctx *ginx.Context) (ginx.Result, error) {
	err := session.RenewAccessToken(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

// Edit 用户编辑信息
func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	err := h.userSvc.UpdateNonSensitiveInfo(ctx, domain.User{
		Id:       uid,
		Nickname: req.Nickname,
		Avatar:   req.Avatar,
		Mobile:   req.Mobile,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) MiniCallback(ctx *ginx.Context, req WechatMiniLoginReq) (ginx.Result, error) {
	info, err := h.weMiniSvc.Verify(ctx, req.Code)
	if err != nil {
		return loginFailedResult, err
	}
	return h.login(ctx, info)
}

// MockLogin 模拟的，用来开发测试环境省略登录过程
func (h *Handler) MockLogin(ctx *ginx.Context, req MockLoginReq) (ginx.Result, error) {
	if req.OpenId == "" {
		return invalidArgumentResult, nil
	}
	res, err := h.login(ctx, domain.WechatInfo{MiniOpenId: req.OpenId})
	if err != nil {
		return res, err
	}
	profile := res.Data.(Profile)
	if req.Mobile != "" || req.Nickname != "" {
		err = h.userSvc.UpdateNonSensitiveInfo(ctx, domain.User{
			Id:       profile.Id,
			Nickname: req.Nickname,
			Mobile:   req.Mobile,
		})
		if err != nil {
			return systemErrorResult, err
		}
		if req.Nickname != "" {
			profile.Nickname = req.Nickname
		}
		if req.Mobile != "" {
			profile.Mobile = req.Mobile
		}
	}
	return ginx.Result{
		Msg:  "OK",
		Data: profile,
	}, nil
}

func (h *Handler) login(ctx *ginx.Context, info domain.WechatInfo) (ginx.Result, error) {
	user, err := h.userSvc.FindOrCreateByWechat(ctx, info)
	if err != nil {
		return systemErrorResult, err
	}
	_, err = session.NewSessionBuilder(ctx, user.Id).
		SetJwtData(map[string]string{
			OpenIdKey: user.WechatInfo.MiniOpenId,
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(user),
	}, nil
}
