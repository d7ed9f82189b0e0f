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
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/webnovel/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCheckRole(t *testing.T) {
	testCases := []struct {
		name       string
		data       map[string]string
		finder     RoleFinder
		wantCode   int
		wantLookup bool
	}{
		{
			name:     "session中是管理员",
			data:     map[string]string{"role": "admin"},
			wantCode: http.StatusOK,
		},
		{
			name: "session中没有角色_实时查询是管理员",
			finder: func(ctx context.Context, uid int64) (string, error) {
				return "admin", nil
			},
			wantCode:   http.StatusOK,
			wantLookup: true,
		},
		{
			name: "session中是普通用户_实时查询已经升级为管理员",
			data: map[string]string{"role": "user"},
			finder: func(ctx context.Context, uid int64) (string, error) {
				return "admin", nil
			},
			wantCode:   http.StatusOK,
			wantLookup: true,
		},
		{
			name: "普通用户",
			finder: func(ctx context.Context, uid int64) (string, error) {
				return "user", nil
			},
			wantCode:   http.StatusForbidden,
			wantLookup: true,
		},
		{
			name: "查询失败",
			finder: func(ctx context.Context, uid int64) (string, error) {
				return "", errors.New("mock db error")
			},
			wantCode:   http.StatusForbidden,
			wantLookup: true,
		},
	}
	gin.SetMode(gin.TestMode)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var lookedUp bool
			builder := NewCheckRoleMiddlewareBuilder(func(ctx context.Context, uid int64) (string, error) {
				lookedUp = true
				assert.Equal(t, int64(2793), uid)
				return tc.finder(ctx, uid)
			})
			server := gin.New()
			server.Use(test.LoginAs(2793, tc.data))
			server.Use(builder.Build("admin"))
			server.POST("/admin/lottery/draw", func(ctx *gin.Context) {
				ctx.Status(http.StatusOK)
			})
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/admin/lottery/draw", nil))
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantLookup, lookedUp)
		})
	}
}
