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

package middleware

import (
	"context"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const roleClaimKey = "role"

// RoleFinder 查询用户当前的角色
type RoleFinder func(ctx context.Context, uid int64) (string, error)

// CheckRoleMiddlewareBuilder 先看 session 里面的 role, 没有或者不匹配再实时查询
type CheckRoleMiddlewareBuilder struct {
	finder RoleFinder
	logger *elog.Component
}

func NewCheckRoleMiddlewareBuilder(finder RoleFinder) *CheckRoleMiddlewareBuilder {
	return &CheckRoleMiddlewareBuilder{
		finder: finder,
		logger: elog.DefaultLogger,
	}
}

func (c *CheckRoleMiddlewareBuilder) Build(role string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := session.Get(gctx)
		if err != nil {
			ctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Debug("用户未登录", elog.FieldErr(err))
			return
		}
		claims := sess.Claims()
		// 快路径
		if claims.Get(roleClaimKey).StringOrDefault("") == role {
			return
		}
		actual, err := c.finder(ctx.Request.Context(), claims.Uid)
		if err != nil {
			ctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Error("查询用户角色失败", elog.Int64("uid", claims.Uid), elog.FieldErr(err))
			return
		}
		if actual != role {
			ctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Warn("非法访问",
				elog.Int64("uid", claims.Uid),
				elog.String("role", actual),
				elog.String("path", ctx.Request.URL.Path))
			return
		}
	}
}
