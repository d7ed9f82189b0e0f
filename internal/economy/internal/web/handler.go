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
	"github.com/ecodeclub/webnovel/internal/economy/internal/domain"
	"github.com/ecodeclub/webnovel/internal/economy/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/economy")
	g.POST("/vote", ginx.BS[VoteReq](h.Vote))
	g.POST("/level", ginx.BS[LevelReq](h.LevelUp))
	g.POST("/reading", ginx.BS[ReadingReq](h.RegisterReading))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Vote(ctx *ginx.Context, req VoteReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Vote(ctx.Request.Context(), domain.Vote{
		Uid:     sess.Claims().Uid,
		StoryId: req.StoryId,
		Amount:  req.Amount,
	})
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) LevelUp(ctx *ginx.Context, req LevelReq, sess session.Session) (ginx.Result, error) {
	level, err := h.svc.LevelUp(ctx.Request.Context(), domain.LevelUp{
		Uid:    sess.Claims().Uid,
		Levels: req.Levels,
	})
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: LevelResp{NewLevel: level}}, nil
}

// RegisterReading 阅读记录失败不影响用户阅读, 只记日志
func (h *Handler) RegisterReading(ctx *ginx.Context, req ReadingReq, sess session.Session) (ginx.Result, error) {
	first, err := h.svc.RegisterReading(ctx.Request.Context(), domain.Reading{
		Uid:       sess.Claims().Uid,
		StoryId:   req.StoryId,
		ChapterId: req.ChapterId,
	})
	if err != nil {
		h.logger.Error("登记阅读记录失败",
			elog.FieldErr(err),
			elog.Int64("uid", sess.Claims().Uid),
			elog.Int64("storyId", req.StoryId),
			elog.Int64("chapterId", req.ChapterId))
		return ginx.Result{Data: ReadingResp{}}, nil
	}
	return ginx.Result{Data: ReadingResp{Success: true, FirstView: first}}, nil
}
