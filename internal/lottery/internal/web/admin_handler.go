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
	"github.com/ecodeclub/webnovel/internal/lottery/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 手动开奖, 用于定时任务失败之后补开
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/admin/lottery")
	g.POST("/draw", ginx.W(h.Draw))
}

func (h *AdminHandler) Draw(ctx *ginx.Context) (ginx.Result, error) {
	res, err := h.svc.Draw(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: DrawResp{
			Drawn:   res.Drawn,
			History: newHistory(res.History),
		},
	}, nil
}
