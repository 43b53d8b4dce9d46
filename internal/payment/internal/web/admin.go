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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/minipay/internal/payment/internal/domain"
	"github.com/ecodeclub/minipay/internal/payment/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type AdminHandler struct {
	svc    service.Service
	logger *elog.Component
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{
		svc:    svc,
		logger: elog.DefaultLogger.With(elog.FieldComponentName("payment.AdminHandler")),
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/pay")
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/stat", ginx.BS[StatReq](h.Stat))
	g.POST("/query", ginx.BS[TradeNoReq](h.Query))
	g.POST("/fix", ginx.BS[TradeNoReq](h.Fix))
	g.POST("/refund", ginx.BS[RefundReq](h.Refund))
	g.POST("/close", ginx.BS[TradeNoReq](h.Close))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq, _ session.Session) (ginx.Result, error) {
	res, err := h.svc.List(ctx.Request.Context(), domain.ListQuery{
		Search:   req.Search,
		SortType: req.SortType,
		SortVal:  req.SortVal,
		Page:     req.Page,
		Size:     req.Size,
		IsTotal:  req.IsTotal,
		OldTotal: req.OldTotal,
	})
	if err != nil {
		return errorResult(err), fmt.Errorf("获取支付流水失败: %w", err)
	}
	return ginx.Result{
		Data: ListResp{
			Total: res.Total,
			List: slice.Map(res.List, func(idx int, src domain.PaymentOrder) Payment {
				return newPayment(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Stat(ctx *ginx.Context, req StatReq, _ session.Session) (ginx.Result, error) {
	st, err := h.svc.Stat(ctx.Request.Context(), req.UserID)
	if err != nil {
		return systemErrorResult, fmt.Errorf("统计支付流水失败: %w", err)
	}
	return ginx.Result{
		Data: StatResp{
			PaidCount:   st.PaidCount,
			PaidFee:     st.PaidFee,
			RefundCount: st.RefundCount,
			RefundFee:   st.RefundFee,
		},
	}, nil
}

func (h *AdminHandler) Query(ctx *ginx.Context, req TradeNoReq, _ session.Session) (ginx.Result, error) {
	o, err := h.svc.FindByTradeNo(ctx.Request.Context(), req.TradeNo)
	if err != nil {
		return errorResult(err), fmt.Errorf("查找支付记录失败: %w", err)
	}
	paid, err := h.svc.QueryStatus(ctx.Request.Context(), req.TradeNo)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{
		Data: QueryResp{
			Payment: newPayment(o),
			Paid:    paid,
		},
	}, nil
}

func (h *AdminHandler) Fix(ctx *ginx.Context, req TradeNoReq, _ session.Session) (ginx.Result, error) {
	if _, err := h.svc.FindByTradeNo(ctx.Request.Context(), req.TradeNo); err != nil {
		return errorResult(err), fmt.Errorf("查找支付记录失败: %w", err)
	}
	paid, err := h.svc.FixStatus(ctx.Request.Context(), req.TradeNo)
	if err != nil {
		return errorResult(err), err
	}
	o, err := h.svc.FindByTradeNo(ctx.Request.Context(), req.TradeNo)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查找支付记录失败: %w", err)
	}
	return ginx.Result{
		Data: QueryResp{
			Payment: newPayment(o),
			Paid:    paid,
		},
	}, nil
}

func (h *AdminHandler) Refund(ctx *ginx.Context, req RefundReq, _ session.Session) (ginx.Result, error) {
	_, err := h.svc.Refund(ctx.Request.Context(), req.TradeNo, req.Desc, true)
	if err != nil {
		return errorResult(err), fmt.Errorf("退款失败: %w", err)
	}
	h.logger.Info("管理员退款", elog.String("trade_no", req.TradeNo), elog.String("desc", req.Desc))
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Close(ctx *ginx.Context, req TradeNoReq, _ session.Session) (ginx.Result, error) {
	if !h.svc.Close(ctx.Request.Context(), req.TradeNo) {
		return closeFailedResult, fmt.Errorf("关闭微信订单失败 %s", req.TradeNo)
	}
	return ginx.Result{Msg: "OK"}, nil
}
