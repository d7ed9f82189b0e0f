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

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/webnovel/internal/account/internal/event"
	"github.com/ecodeclub/webnovel/internal/account/internal/repository"
	"github.com/ecodeclub/webnovel/internal/account/internal/repository/dao"
	"github.com/ecodeclub/webnovel/internal/account/internal/service"
	"github.com/ecodeclub/webnovel/internal/account/internal/web"
	"github.com/ecodeclub/webnovel/internal/pkg/ledger"
	"github.com/ecodeclub/webnovel/internal/pkg/sequencenumber"
	"github.com/ecodeclub/webnovel/internal/test"
	testioc "github.com/ecodeclub/webnovel/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = 123

func TestAccountModule(t *testing.T) {
	suite.Run(t, new(AccountTestSuite))
}

type AccountTestSuite struct {
	suite.Suite
	db     *egorm.Component
	svc    service.Service
	server *gin.Engine
}

func (s *AccountTestSuite) SetupTest() {
	s.db = testioc.InitSQLiteDB(s.T())
	s.svc = s.newService(sequencenumber.NewGenerator())
	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.Use(test.LoginAs(uid, nil))
	web.NewHandler(s.svc).PrivateRoutes(server)
	s.server = server
}

func (s *AccountTestSuite) newService(sn *sequencenumber.Generator) service.Service {
	return service.NewService(repository.NewAccountRepository(dao.NewAccountGORMDAO(s.db)), sn)
}

func (s *AccountTestSuite) TestRegister() {
	t := s.T()
	ctx := context.Background()
	err := s.svc.Register(ctx, uid, "Ana")
	require.NoError(t, err)

	var a ledger.Account
	require.NoError(t, s.db.Where("uid = ?", uid).First(&a).Error)
	assert.Equal(t, "Ana", a.Name)
	assert.Equal(t, int64(0), a.Coins)
	assert.Equal(t, int64(0), a.Level)
	assert.Equal(t, ledger.RoleUser, a.Role)
	assert.True(t, a.ReferralCode.Valid)
	assert.Len(t, a.ReferralCode.String, 10)
	assert.Equal(t, []string{}, a.Badges.Val)

	// 重复的注册事件
	err = s.svc.Register(ctx, uid, "Ana2")
	require.NoError(t, err)
	var cnt int64
	require.NoError(t, s.db.Model(&ledger.Account{}).Where("uid = ?", uid).Count(&cnt).Error)
	assert.Equal(t, int64(1), cnt)

	found, err := s.svc.FindUIDByReferralCode(ctx, a.ReferralCode.String)
	require.NoError(t, err)
	assert.Equal(t, int64(uid), found)

	_, err = s.svc.FindUIDByReferralCode(ctx, "not-exist")
	assert.ErrorIs(t, err, service.ErrReferralCodeNotFound)
}

func (s *AccountTestSuite) TestRegister_ReferralCodeConflict() {
	t := s.T()
	// 固定的 uuid, uid 后四位相同时推荐码必然冲突
	sn := sequencenumber.NewGeneratorWith(time.Now, func() string {
		return "fixedfixedfixedfixed12"
	})
	svc := s.newService(sn)
	require.NoError(t, svc.Register(context.Background(), 1, "first"))
	err := svc.Register(context.Background(), 10001, "second")
	assert.Error(t, err)

	var cnt int64
	require.NoError(t, s.db.Model(&ledger.Account{}).Where("uid = ?", 10001).Count(&cnt).Error)
	assert.Equal(t, int64(0), cnt)
}

func (s *AccountTestSuite) TestConsumer() {
	t := s.T()
	q := testioc.InitMQ()
	c, err := event.NewRegistrationEventConsumer(s.svc, q)
	require.NoError(t, err)
	producer, err := q.Producer("user_registration_events")
	require.NoError(t, err)

	testCases := []struct {
		name    string
		evt     event.RegistrationEvent
		wantErr bool
		after   func(t *testing.T)
	}{
		{
			name: "创建账户",
			evt:  event.RegistrationEvent{Uid: 2001, Name: "Bia"},
			after: func(t *testing.T) {
				a, err := s.svc.Profile(context.Background(), 2001)
				require.NoError(t, err)
				assert.Equal(t, "Bia", a.Name)
			},
		},
		{
			name: "重复消息",
			evt:  event.RegistrationEvent{Uid: 2001, Name: "Bia"},
			after: func(t *testing.T) {
				var cnt int64
				require.NoError(t, s.db.Model(&ledger.Account{}).Where("uid = ?", 2001).Count(&cnt).Error)
				assert.Equal(t, int64(1), cnt)
			},
		},
		{
			name:    "非法 uid",
			evt:     event.RegistrationEvent{Uid: 0},
			wantErr: true,
			after:   func(t *testing.T) {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.evt)
			require.NoError(t, err)
			_, err = producer.Produce(context.Background(), &mq.Message{Value: data})
			require.NoError(t, err)
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			err = c.Consume(ctx)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			tc.after(t)
		})
	}
}

func (s *AccountTestSuite) TestProfile() {
	t := s.T()
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		wantCode int
		wantData web.Profile
	}{
		{
			name:     "账户不存在",
			before:   func(t *testing.T) {},
			wantCode: 520002,
		},
		{
			name: "查询成功",
			before: func(t *testing.T) {
				err := s.db.Create(&ledger.Account{
					Uid:             uid,
					Name:            "Ana",
					Coins:           50,
					Level:           100,
					IsAdFree:        true,
					Badges:          sqlx.JsonColumn[[]string]{Val: []string{ledger.BadgePioneer}, Valid: true},
					FollowersCount:  3,
					SaldoDisponivel: decimal.RequireFromString("12.5"),
					SaldoPendente:   decimal.RequireFromString("3"),
				}).Error
				require.NoError(t, err)
			},
			wantData: web.Profile{
				Uid:             uid,
				Name:            "Ana",
				Coins:           50,
				Level:           100,
				IsAdFree:        true,
				Badges:          []string{ledger.BadgePioneer},
				FollowersCount:  3,
				SaldoDisponivel: "12.50",
				SaldoPendente:   "3.00",
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodGet, "/account/profile", nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Profile]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			if tc.wantCode == 0 {
				assert.Equal(t, tc.wantData, res.Data)
			}
		})
	}
}

func (s *AccountTestSuite) TestNotifications() {
	t := s.T()
	for i := 1; i <= 5; i++ {
		err := s.db.Create(&ledger.Notification{
			Uid:     uid,
			Type:    ledger.NotificationTypeLottery,
			Title:   fmt.Sprintf("title-%d", i),
			Content: "content",
			Ctime:   int64(i),
		}).Error
		require.NoError(t, err)
	}
	// 别人的通知
	require.NoError(t, s.db.Create(&ledger.Notification{Uid: uid + 1, Type: ledger.NotificationTypeBadge}).Error)

	req, err := http.NewRequest(http.MethodPost, "/account/notifications", iox.NewJSONReader(web.Page{Offset: 1, Limit: 2}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.NotificationList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan().Data
	assert.Equal(t, int64(5), res.Total)
	require.Len(t, res.Notifications, 2)
	assert.Equal(t, "title-4", res.Notifications[0].Title)
	assert.Equal(t, "title-3", res.Notifications[1].Title)

	n, err := s.svc.MarkNotificationsRead(context.Background(), uid, []int64{res.Notifications[0].Id, 6})
	require.NoError(t, err)
	// id=6 是别人的, 不会被修改
	assert.Equal(t, int64(1), n)
}
