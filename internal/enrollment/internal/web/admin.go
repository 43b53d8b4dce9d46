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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/minipay/internal/enrollment/internal/domain"
	"github.com/ecodeclub/minipay/internal/enrollment/internal/service"
	"github.com/gin-gonic/gin"
)

const maxLimit = 100

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/enrollment")
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/stat", ginx.BS[StatReq](h.Stat))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq, _ session.Session) (ginx.Result, error) {
	limit := req.Limit
	if limit <= 0 || limit > maxLimit {
		limit = maxLimit
	}
	es, total, err := h.svc.List(ctx.Request.Context(), req.ActivityId, max(req.Offset, 0), limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{
			Total: total,
			List: slice.Map(es, func(idx int, src domain.Enrollment) Enrollment {
				return newEnrollment(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Stat(ctx *ginx.Context, req StatReq, _ session.Session) (ginx.Result, error) {
	if req.ActivityId <= 0 {
		return errorResult(service.ErrInvalidArgument), nil
	}
	s, err := h.svc.Stat(ctx.Request.Context(), req.ActivityId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: StatResp{
			JoinCount: s.JoinCount,
			PaidCount: s.PaidCount,
			PaidFee:   s.PaidFee,
		},
	}, nil
}
