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
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/webnovel/internal/pkg/ledger"
	"github.com/ecodeclub/webnovel/internal/pkg/txn"
	"github.com/ecodeclub/webnovel/internal/test"
	testioc "github.com/ecodeclub/webnovel/internal/test/ioc"
	"github.com/ecodeclub/webnovel/internal/wallet/internal/domain"
	"github.com/ecodeclub/webnovel/internal/wallet/internal/repository"
	"github.com/ecodeclub/webnovel/internal/wallet/internal/repository/dao"
	"github.com/ecodeclub/webnovel/internal/wallet/internal/service"
	"github.com/ecodeclub/webnovel/internal/wallet/internal/web"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = 123

func TestWalletModule(t *testing.T) {
	suite.Run(t, new(WalletTestSuite))
}

type WalletTestSuite struct {
	suite.Suite
	db     *egorm.Component
	now    time.Time
	svc    service.Service
	server *gin.Engine
}

func (s *WalletTestSuite) SetupTest() {
	t := s.T()
	s.db = testioc.InitSQLiteDB(t)
	s.now = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	runner := txn.NewRunner(s.db).WithRetry(time.Millisecond, 5*time.Millisecond, 100)
	repo := repository.NewWalletRepository(dao.NewWalletGORMDAO(s.db, runner))
	s.svc = service.NewService(repo, domain.DefaultConfig(), func() time.Time {
		return s.now
	})

	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.Use(test.LoginAs(uid, nil))
	web.NewHandler(s.svc).PrivateRoutes(server)
	s.server = server

	require.NoError(t, s.db.Create(&ledger.Account{
		Uid:           uid,
		SaldoPendente: decimal.RequireFromString("5.00"),
	}).Error)
	s.addEarning(t, "3.00", s.now.Add(-time.Hour))
	s.addEarning(t, "2.00", s.now.Add(time.Hour*24*10))
}

func (s *WalletTestSuite) addEarning(t *testing.T, amount string, maturesAt time.Time) {
	require.NoError(t, s.db.Create(&ledger.WalletEarning{
		Uid:       uid,
		Amount:    decimal.RequireFromString(amount),
		Biz:       ledger.EarningBizReferral,
		BizId:     1,
		Status:    ledger.EarningStatusPending,
		MaturesAt: maturesAt.UnixMilli(),
	}).Error)
}

func (s *WalletTestSuite) TestRefresh() {
	t := s.T()
	assert.Equal(t, "3.00", s.refresh(t))
	s.assertWallet(t, "3.00", "2.00")

	// 重复调用不会重复结算
	assert.Equal(t, "0.00", s.refresh(t))
	s.assertWallet(t, "3.00", "2.00")

	s.now = s.now.Add(time.Hour * 24 * 11)
	assert.Equal(t, "2.00", s.refresh(t))
	s.assertWallet(t, "5.00", "0.00")

	var released int64
	require.NoError(t, s.db.Model(&ledger.WalletEarning{}).
		Where("uid = ? AND status = ?", uid, ledger.EarningStatusReleased).
		Count(&released).Error)
	assert.Equal(t, int64(2), released)
}

func (s *WalletTestSuite) TestConcurrentRefresh() {
	t := s.T()
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total = decimal.Zero
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			moved, err := s.svc.Refresh(context.Background(), uid)
			assert.NoError(t, err)
			mu.Lock()
			total = total.Add(moved)
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, "3.00", total.StringFixed(2))
	s.assertWallet(t, "3.00", "2.00")
}

func (s *WalletTestSuite) TestWithdraw() {
	testCases := []struct {
		name      string
		available string
		now       time.Time
		wantCode  int
		wantMsg   string
		wantResp  string
		// 提现之后的可提现余额
		wantAvailable string
	}{
		{
			name:          "不在提现窗口",
			available:     "50.00",
			now:           time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC),
			wantCode:      524002,
			wantMsg:       "window-closed",
			wantAvailable: "50.00",
		},
		{
			name:          "低于最低提现金额",
			available:     "9.99",
			now:           time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			wantCode:      524003,
			wantMsg:       "below-minimum",
			wantAvailable: "9.99",
		},
		{
			name:          "月初提现",
			available:     "10.00",
			now:           time.Date(2024, time.March, 5, 23, 0, 0, 0, time.UTC),
			wantResp:      "10.00",
			wantAvailable: "0.00",
		},
		{
			name:          "月末提现",
			available:     "12.50",
			now:           time.Date(2024, time.March, 30, 8, 0, 0, 0, time.UTC),
			wantResp:      "12.50",
			wantAvailable: "0.00",
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			s.SetupTest()
			s.now = tc.now
			require.NoError(t, s.db.Model(&ledger.Account{}).Where("uid = ?", uid).
				Update("saldo_disponivel", decimal.RequireFromString(tc.available)).Error)

			req, err := http.NewRequest(http.MethodPost, "/wallet/withdraw", nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.WithdrawResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			s.assertWallet(t, tc.wantAvailable, "5.00")

			var withdrawals []ledger.WalletWithdrawal
			require.NoError(t, s.db.Where("uid = ?", uid).Find(&withdrawals).Error)
			var notifications []ledger.Notification
			require.NoError(t, s.db.Where("uid = ?", uid).Find(&notifications).Error)
			if tc.wantCode != 0 {
				assert.Equal(t, tc.wantMsg, res.Msg)
				assert.Empty(t, withdrawals)
				assert.Empty(t, notifications)
				return
			}
			assert.Equal(t, tc.wantResp, res.Data.Amount)
			require.Len(t, withdrawals, 1)
			assert.Equal(t, res.Data.Id, withdrawals[0].Id)
			assert.Equal(t, tc.wantResp, withdrawals[0].Amount.StringFixed(2))
			assert.Equal(t, ledger.WithdrawalStatusRequested, withdrawals[0].Status)
			require.Len(t, notifications, 1)
			assert.Equal(t, ledger.NotificationTypeWallet, notifications[0].Type)
		})
	}
}

func (s *WalletTestSuite) TestDetail() {
	t := s.T()
	req, err := http.NewRequest(http.MethodGet, "/wallet/detail", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Wallet]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(t, web.Wallet{Available: "0.00", Pending: "5.00"}, recorder.MustScan().Data)

	_, err = s.svc.Detail(context.Background(), 404)
	assert.ErrorIs(t, err, service.ErrAccountNotFound)
}

func (s *WalletTestSuite) refresh(t *testing.T) string {
	req, err := http.NewRequest(http.MethodPost, "/wallet/refresh", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.RefreshResp]()
	s.server.ServeHTTP(recorder, req)
	res := recorder.MustScan()
	require.Equal(t, 0, res.Code)
	return res.Data.Moved
}

func (s *WalletTestSuite) assertWallet(t *testing.T, available, pending string) {
	w, err := s.svc.Detail(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, available, w.Available.StringFixed(2))
	assert.Equal(t, pending, w.Pending.StringFixed(2))
}
