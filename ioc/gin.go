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
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/webnovel/internal/account"
	"github.com/ecodeclub/webnovel/internal/economy"
	"github.com/ecodeclub/webnovel/internal/interactive"
	"github.com/ecodeclub/webnovel/internal/lottery"
	"github.com/ecodeclub/webnovel/internal/pkg/middleware"
	"github.com/ecodeclub/webnovel/internal/subscription"
	"github.com/ecodeclub/webnovel/internal/wallet"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	accHdl *account.Handler,
	intrHdl *interactive.Handler,
	ecoHdl *economy.Handler,
	subHdl *subscription.Handler,
	walletHdl *wallet.Handler,
	lotteryHdl *lottery.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(corsConfig()))
	res.Use(middleware.NewMetricsBuilder("webnovel", nil).IgnorePaths("/hello").Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	accHdl.PublicRoutes(res.Engine)
	intrHdl.PublicRoutes(res.Engine)
	ecoHdl.PublicRoutes(res.Engine)
	subHdl.PublicRoutes(res.Engine)
	walletHdl.PublicRoutes(res.Engine)
	lotteryHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	accHdl.PrivateRoutes(res.Engine)
	intrHdl.PrivateRoutes(res.Engine)
	ecoHdl.PrivateRoutes(res.Engine)
	subHdl.PrivateRoutes(res.Engine)
	walletHdl.PrivateRoutes(res.Engine)
	lotteryHdl.PrivateRoutes(res.Engine)
	return res
}

func corsConfig() cors.Config {
	domains := econf.GetStringSlice("web.allowedDomains")
	return cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, d := range domains {
				if strings.Contains(origin, d) {
					return true
				}
			}
			return false
		},
	}
}
