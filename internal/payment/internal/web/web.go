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
	"context"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/minipay/internal/payment/internal/domain"
	"github.com/ecodeclub/minipay/internal/payment/internal/service"
	"github.com/ecodeclub/minipay/internal/payment/internal/service/wechat"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/wechatpay-apiv3/wechatpay-go/core/notify"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
)

//go:generate mockgen -source=./web.go -package=webmocks -destination=./mocks/web.mock.go NotifyHandler
type NotifyHandler interface {
	ParseNotifyRequest(ctx context.Context, request *http.Request, content interface{}) (*notify.Request, error)
}

var _ ginx.Handler = &Handler{}

// Handler 微信支付回调，无论处理结果如何都应答成功
type Handler struct {
	handler NotifyHandler
	svc     service.Service
	// 沙箱模式下才开放模拟回调
	sandbox bool
	l       *elog.Component
}

func NewHandler(handler NotifyHandler, svc service.Service, sandbox bool) *Handler {
	return &Handler{
		handler: handler,
		svc:     svc,
		sandbox: sandbox,
		l:       elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/pay/callback", h.Callback)
	if h.sandbox {
		// 测试环境专用
		server.POST("/pay/mock_cb", h.MockCallback)
	}
}

func (h *Handler) Callback(ctx *gin.Context) {
	txn := &payments.Transaction{}
	_, err := h.handler.ParseNotifyRequest(ctx.Request.Context(), ctx.Request, txn)
	if err != nil {
		// 验签或者解密失败，只能等对账
		h.l.Error("解析微信支付通知失败", elog.FieldErr(err))
		ctx.JSON(http.StatusOK, domain.SuccessAck)
		return
	}
	ctx.JSON(http.StatusOK, h.svc.HandleNotification(ctx.Request.Context(), wechat.ToNotification(txn)))
}

func (h *Handler) MockCallback(ctx *gin.Context) {
	var n domain.Notification
	if err := ctx.ShouldBindJSON(&n); err != nil {
		h.l.Error("解析模拟支付通知失败", elog.FieldErr(err))
		ctx.JSON(http.StatusOK, domain.SuccessAck)
		return
	}
	ctx.JSON(http.StatusOK, h.svc.HandleNotification(ctx.Request.Context(), n))
}
