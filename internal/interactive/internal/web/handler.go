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
	"github.com/ecodeclub/webnovel/internal/interactive/internal/domain"
	"github.com/ecodeclub/webnovel/internal/interactive/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.InteractiveService
}

func NewHandler(svc service.InteractiveService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/intr")
	g.POST("/rate", ginx.BS[RateReq](h.Rate))
	g.POST("/follow", ginx.BS[FollowReq](h.Follow))
	g.POST("/unfollow", ginx.BS[FollowReq](h.Unfollow))
	// 统一用 POST 请求，懒得去处理不同的
	g.POST("/cnt", ginx.BS[GetCntReq](h.GetCnt))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Rate(ctx *ginx.Context, req RateReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Rate(ctx.Request.Context(), domain.Rating{
		StoryId: req.StoryId,
		Uid:     sess.Claims().Uid,
		Rating:  req.Rating,
	})
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Follow(ctx *ginx.Context, req FollowReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Follow(ctx.Request.Context(), sess.Claims().Uid, req.Uid)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Unfollow(ctx *ginx.Context, req FollowReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Unfollow(ctx.Request.Context(), sess.Claims().Uid, req.Uid)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) GetCnt(ctx *ginx.Context, req GetCntReq, sess session.Session) (ginx.Result, error) {
	stat, err := h.svc.StoryStat(ctx.Request.Context(), req.StoryId, sess.Claims().Uid)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{
		Data: GetCntResp{
			Rating:   stat.Rating,
			Votes:    stat.Votes,
			Views:    stat.Views,
			MyRating: stat.MyRating,
		},
	}, nil
}
