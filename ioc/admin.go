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

package ioc

import (
	"context"
	"net/http"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/webnovel/internal/account"
	"github.com/ecodeclub/webnovel/internal/lottery"
	"github.com/ecodeclub/webnovel/internal/pkg/ledger"
	"github.com/ecodeclub/webnovel/internal/pkg/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

type AdminServer *egin.Component

func InitAdminServer(accountSvc account.Service, lotteryHdl *lottery.AdminHandler) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(cors.New(corsConfig()))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	res.Use(AdminPermission(accountSvc))
	lotteryHdl.PrivateRoutes(res.Engine)
	return res
}

// AdminPermission 只有 role 为 admin 的账户可以访问
func AdminPermission(accountSvc account.Service) gin.HandlerFunc {
	return middleware.NewCheckRoleMiddlewareBuilder(func(ctx context.Context, uid int64) (string, error) {
		acc, err := accountSvc.Profile(ctx, uid)
		return acc.Role, err
	}).Build(ledger.RoleAdmin)
}
