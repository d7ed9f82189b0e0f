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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/webnovel/internal/account/internal/domain"
	"github.com/ecodeclub/webnovel/internal/account/internal/service"
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
	g := server.Group("/account")
	g.GET("/profile", ginx.S(h.Profile))
	g.POST("/notifications", ginx.BS[Page](h.Notifications))
	g.POST("/notifications/read", ginx.BS[MarkReadReq](h.MarkRead))
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	a, err := h.svc.Profile(ctx.Request.Context(), sess.Claims().Uid)
	if errors.Is(err, service.ErrAccountNotFound) {
		return accountNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(a),
	}, nil
}

func (h *Handler) Notifications(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	if req.Limit <= 0 || req.Limit > maxPageSize {
		req.Limit = maxPageSize
	}
	ns, total, err := h.svc.Notifications(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: NotificationList{
			Total: total,
			Notifications: slice.Map(ns, func(idx int, src domain.Notification) Notification {
				return Notification{
					Id:      src.Id,
					Type:    src.Type,
					Title:   src.Title,
					Content: src.Content,
					Read:    src.Read,
					Ctime:   src.Ctime,
				}
			}),
		},
	}, nil
}

func (h *Handler) MarkRead(ctx *ginx.Context, req MarkReadReq, sess session.Session) (ginx.Result, error) {
	n, err := h.svc.MarkNotificationsRead(ctx.Request.Context(), sess.Claims().Uid, req.Ids)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: n}, nil
}
