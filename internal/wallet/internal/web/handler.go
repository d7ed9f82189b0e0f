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
	"github.com/ecodeclub/webnovel/internal/wallet/internal/service"
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
	g := server.Group("/wallet")
	g.POST("/refresh", ginx.S(h.Refresh))
	g.POST("/withdraw", ginx.S(h.Withdraw))
	g.GET("/detail", ginx.S(h.Detail))
}

func (h *Handler) Refresh(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	moved, err := h.svc.Refresh(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: RefreshResp{Moved: moved.StringFixed(2)}}, nil
}

func (h *Handler) Withdraw(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	w, err := h.svc.Withdraw(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{
		Msg:  "OK",
		Data: WithdrawResp{Id: w.Id, Amount: w.Amount.StringFixed(2)},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	w, err := h.svc.Detail(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{
		Data: Wallet{
			Available: w.Available.StringFixed(2),
			Pending:   w.Pending.StringFixed(2),
		},
	}, nil
}
