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
	"github.com/ecodeclub/webnovel/internal/lottery/internal/domain"
	"github.com/ecodeclub/webnovel/internal/lottery/internal/service"
	"github.com/gin-gonic/gin"
)

const maxPageSize = 100

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/lottery")
	g.POST("/join", ginx.S(h.Join))
	g.GET("/state", ginx.S(h.State))
	g.POST("/history", ginx.B[Page](h.Histories))
}

func (h *Handler) Join(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	ticket, err := h.svc.Join(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Msg: "OK", Data: JoinResp{Ticket: ticket}}, nil
}

func (h *Handler) State(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	st, err := h.svc.State(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: State{
			Round:        st.Round,
			Pool:         st.Pool,
			Participants: st.Participants,
			MyTicket:     st.MyTicket,
		},
	}, nil
}

func (h *Handler) Histories(ctx *ginx.Context, req Page) (ginx.Result, error) {
	if req.Limit <= 0 || req.Limit > maxPageSize {
		req.Limit = maxPageSize
	}
	hs, total, err := h.svc.Histories(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: HistoryList{
			Total:     total,
			Histories: slice.Map(hs, func(idx int, src domain.History) History { return newHistory(src) }),
		},
	}, nil
}
