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
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/webnovel/internal/subscription/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/subscription")
	g.POST("/subscribe", ginx.BS[SubscribeReq](h.Subscribe))
	g.GET("/detail", ginx.S(h.Detail))
}

func (h *Handler) Subscribe(ctx *ginx.Context, req SubscribeReq, sess session.Session) (ginx.Result, error) {
	r, err := h.svc.Subscribe(ctx.Request.Context(), sess.Claims().Uid, req.ReferralCode)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{
		Msg: "OK",
		Data: SubscribeResp{
			Key:        r.Key,
			Price:      r.Price.StringFixed(2),
			Discounted: r.Discounted,
			EndAt:      r.EndAt,
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	s, err := h.svc.Detail(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Subscription{
			StartAt: s.StartAt,
			EndAt:   s.EndAt,
			Active:  s.Active(time.Now().UnixMilli()),
		},
	}, nil
}
