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
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/webnovel/internal/account"
	accountmocks "github.com/ecodeclub/webnovel/internal/account/mocks"
	"github.com/ecodeclub/webnovel/internal/pkg/ledger"
	mqxmocks "github.com/ecodeclub/webnovel/internal/pkg/mqx/mocks"
	"github.com/ecodeclub/webnovel/internal/pkg/sequencenumber"
	"github.com/ecodeclub/webnovel/internal/pkg/txn"
	"github.com/ecodeclub/webnovel/internal/subscription/internal/domain"
	"github.com/ecodeclub/webnovel/internal/subscription/internal/event"
	"github.com/ecodeclub/webnovel/internal/subscription/internal/repository"
	"github.com/ecodeclub/webnovel/internal/subscription/internal/repository/cache"
	cachemocks "github.com/ecodeclub/webnovel/internal/subscription/internal/repository/cache/mocks"
	"github.com/ecodeclub/webnovel/internal/subscription/internal/repository/dao"
	"github.com/ecodeclub/webnovel/internal/subscription/internal/service"
	"github.com/ecodeclub/webnovel/internal/subscription/internal/web"
	"github.com/ecodeclub/webnovel/internal/test"
	testioc "github.com/ecodeclub/webnovel/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	uid          = 123
	referrerId   = 9
	referralCode = "R0009ABCDE"

	day = time.Hour * 24
)

func TestSubscriptionModule(t *testing.T) {
	suite.Run(t, new(SubscriptionTestSuite))
}

type SubscriptionTestSuite struct {
	suite.Suite
	db         *egorm.Component
	ctrl       *gomock.Controller
	cache      *cachemocks.MockReferralCache
	accountSvc *accountmocks.MockService
	producer   *mqxmocks.MockProducer[event.SubscriptionEvent]
	cfg        domain.Config
	svc        service.Service
	server     *gin.Engine
}

func (s *SubscriptionTestSuite) SetupTest() {
	t := s.T()
	s.db = testioc.InitSQLiteDB(t, &dao.Subscription{}, &dao.SubscriptionRecord{}, &dao.ReferralUse{})
	s.ctrl = gomock.NewController(t)
	s.cache = cachemocks.NewMockReferralCache(s.ctrl)
	s.accountSvc = accountmocks.NewMockService(s.ctrl)
	s.producer = mqxmocks.NewMockProducer[event.SubscriptionEvent](s.ctrl)
	s.cfg = domain.DefaultConfig()

	runner := txn.NewRunner(s.db).WithRetry(time.Millisecond, 5*time.Millisecond, 100)
	repo := repository.NewSubscriptionRepository(dao.NewSubscriptionGORMDAO(s.db, runner), s.cache)
	s.svc = service.NewService(repo, s.accountSvc, s.producer, sequencenumber.NewGenerator(), s.cfg)

	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.Use(test.LoginAs(uid, nil))
	web.NewHandler(s.svc).PrivateRoutes(server)
	s.server = server

	require.NoError(t, s.db.Create(&ledger.Account{Uid: uid}).Error)
	require.NoError(t, s.db.Create(&ledger.Account{Uid: referrerId}).Error)
}

func (s *SubscriptionTestSuite) TestSubscribe() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		req      web.SubscribeReq
		wantCode int
		wantResp web.SubscribeResp
		after    func(t *testing.T)
	}{
		{
			name: "不使用推荐码, 原价",
			before: func(t *testing.T) {
				s.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt event.SubscriptionEvent) error {
						assert.Equal(t, int64(uid), evt.Uid)
						assert.Equal(t, "9.90", evt.Price)
						assert.Zero(t, evt.ReferrerId)
						return nil
					})
			},
			req:      web.SubscribeReq{ReferralCode: "   "},
			wantResp: web.SubscribeResp{Price: "9.90"},
			after: func(t *testing.T) {
				s.assertPending(t, decimal.Zero, 0)
			},
		},
		{
			name: "使用推荐码, 折扣价, 推荐人获得待结算奖励",
			before: func(t *testing.T) {
				s.cache.EXPECT().Get(gomock.Any(), referralCode).Return(int64(0), cache.ErrKeyNotExist)
				s.accountSvc.EXPECT().FindUIDByReferralCode(gomock.Any(), referralCode).Return(int64(referrerId), nil)
				s.cache.EXPECT().Set(gomock.Any(), referralCode, int64(referrerId)).Return(nil)
				s.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			req:      web.SubscribeReq{ReferralCode: referralCode},
			wantResp: web.SubscribeResp{Price: "7.90", Discounted: true},
			after: func(t *testing.T) {
				s.assertPending(t, s.cfg.ReferralBonus, 1)
				var earning ledger.WalletEarning
				require.NoError(t, s.db.Where("uid = ?", referrerId).First(&earning).Error)
				assert.Equal(t, ledger.EarningBizReferral, earning.Biz)
				assert.Equal(t, ledger.EarningStatusPending, earning.Status)
				maturesAt := time.Now().Add(day * time.Duration(s.cfg.MaturationDays)).UnixMilli()
				assert.InDelta(t, maturesAt, earning.MaturesAt, float64(time.Minute.Milliseconds()))
				var record dao.SubscriptionRecord
				require.NoError(t, s.db.Where("uid = ?", uid).First(&record).Error)
				assert.True(t, record.Price.Equal(s.cfg.DiscountedPrice))
				assert.Equal(t, int64(referrerId), record.ReferrerId)
			},
		},
		{
			name: "推荐码不存在",
			before: func(t *testing.T) {
				s.cache.EXPECT().Get(gomock.Any(), "NOPE").Return(int64(0), cache.ErrKeyNotExist)
				s.accountSvc.EXPECT().FindUIDByReferralCode(gomock.Any(), "NOPE").
					Return(int64(0), account.ErrReferralCodeNotFound)
			},
			req:      web.SubscribeReq{ReferralCode: "NOPE"},
			wantCode: 523002,
			after: func(t *testing.T) {
				s.assertNotSubscribed(t)
			},
		},
		{
			name: "使用自己的推荐码",
			before: func(t *testing.T) {
				s.cache.EXPECT().Get(gomock.Any(), "R0123XXXXX").Return(int64(uid), nil)
			},
			req:      web.SubscribeReq{ReferralCode: "R0123XXXXX"},
			wantCode: 523003,
			after: func(t *testing.T) {
				s.assertNotSubscribed(t)
			},
		},
		{
			name: "缓存出错时查账户",
			before: func(t *testing.T) {
				s.cache.EXPECT().Get(gomock.Any(), referralCode).Return(int64(0), errors.New("mock error"))
				s.accountSvc.EXPECT().FindUIDByReferralCode(gomock.Any(), referralCode).Return(int64(referrerId), nil)
				s.cache.EXPECT().Set(gomock.Any(), referralCode, int64(referrerId)).Return(errors.New("mock error"))
				s.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			req:      web.SubscribeReq{ReferralCode: referralCode},
			wantResp: web.SubscribeResp{Price: "7.90", Discounted: true},
			after: func(t *testing.T) {
				s.assertPending(t, s.cfg.ReferralBonus, 1)
			},
		},
		{
			name: "消息发送失败不影响订阅",
			before: func(t *testing.T) {
				s.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mock error"))
			},
			wantResp: web.SubscribeResp{Price: "9.90"},
			after:    func(t *testing.T) {},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			s.SetupTest()
			tc.before(t)
			recorder := s.subscribe(t, tc.req)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			if tc.wantCode == 0 {
				assert.Len(t, res.Data.Key, 32)
				assert.Equal(t, tc.wantResp.Price, res.Data.Price)
				assert.Equal(t, tc.wantResp.Discounted, res.Data.Discounted)
				endAt := time.Now().Add(day * time.Duration(s.cfg.Days)).UnixMilli()
				assert.InDelta(t, endAt, res.Data.EndAt, float64(time.Minute.Milliseconds()))
			}
			tc.after(t)
		})
	}
}

func (s *SubscriptionTestSuite) TestReferralUsedOnce() {
	t := s.T()
	ctx := context.Background()
	s.cache.EXPECT().Get(gomock.Any(), referralCode).Return(int64(referrerId), nil).Times(2)
	s.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	first, err := s.svc.Subscribe(ctx, uid, referralCode)
	require.NoError(t, err)
	_, err = s.svc.Subscribe(ctx, uid, referralCode)
	assert.ErrorIs(t, err, service.ErrReferralAlreadyUsed)

	// 第二次订阅整个回滚
	sub, err := s.svc.Detail(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, first.EndAt, sub.EndAt)
	s.assertPending(t, s.cfg.ReferralBonus, 1)
	var cnt int64
	require.NoError(t, s.db.Model(&dao.SubscriptionRecord{}).Where("uid = ?", uid).Count(&cnt).Error)
	assert.Equal(t, int64(1), cnt)
}

func (s *SubscriptionTestSuite) TestRenew() {
	t := s.T()
	ctx := context.Background()
	s.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	first, err := s.svc.Subscribe(ctx, uid, "")
	require.NoError(t, err)
	second, err := s.svc.Subscribe(ctx, uid, "")
	require.NoError(t, err)
	// 未过期, 在原来的结束时间上续期
	assert.Equal(t, time.UnixMilli(first.EndAt).Add(day*30).UnixMilli(), second.EndAt)

	// 已过期, 从现在开始重新计算
	past := time.Now().Add(-day).UnixMilli()
	require.NoError(t, s.db.Model(&dao.Subscription{}).Where("uid = ?", uid).
		Updates(map[string]any{"start_at": past - 1000, "end_at": past}).Error)
	third, err := s.svc.Subscribe(ctx, uid, "")
	require.NoError(t, err)
	assert.InDelta(t, time.Now().Add(day*30).UnixMilli(), third.EndAt, float64(time.Minute.Milliseconds()))

	sub, err := s.svc.Detail(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, third.EndAt, sub.EndAt)
	assert.Greater(t, sub.StartAt, past)
}

func (s *SubscriptionTestSuite) TestDetail() {
	t := s.T()
	req, err := http.NewRequest(http.MethodGet, "/subscription/detail", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Subscription]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, web.Subscription{}, recorder.MustScan().Data)

	s.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
	r, err := s.svc.Subscribe(context.Background(), uid, "")
	require.NoError(t, err)

	req, err = http.NewRequest(http.MethodGet, "/subscription/detail", nil)
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[web.Subscription]()
	s.server.ServeHTTP(recorder, req)
	data := recorder.MustScan().Data
	assert.True(t, data.Active)
	assert.Equal(t, r.EndAt, data.EndAt)
}

func (s *SubscriptionTestSuite) subscribe(t *testing.T, body web.SubscribeReq) test.JSONResponseRecorder[web.SubscribeResp] {
	req, err := http.NewRequest(http.MethodPost, "/subscription/subscribe", iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.SubscribeResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder
}

func (s *SubscriptionTestSuite) assertPending(t *testing.T, want decimal.Decimal, earnings int64) {
	var acc ledger.Account
	require.NoError(t, s.db.Where("uid = ?", referrerId).First(&acc).Error)
	assert.True(t, want.Equal(acc.SaldoPendente), "saldo_pendente %s", acc.SaldoPendente)
	var cnt int64
	require.NoError(t, s.db.Model(&ledger.WalletEarning{}).Where("uid = ?", referrerId).Count(&cnt).Error)
	assert.Equal(t, earnings, cnt)
}

func (s *SubscriptionTestSuite) assertNotSubscribed(t *testing.T) {
	var cnt int64
	require.NoError(t, s.db.Model(&dao.Subscription{}).Where("uid = ?", uid).Count(&cnt).Error)
	assert.Zero(t, cnt)
	s.assertPending(t, decimal.Zero, 0)
}
