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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/webnovel/internal/wallet/internal/domain"
	"github.com/ecodeclub/webnovel/internal/wallet/internal/repository"
	"github.com/shopspring/decimal"
)

var (
	ErrWindowClosed = errors.New("不在提现时间窗口内")

	ErrBelowMinimum    = repository.ErrBelowMinimum
	ErrAccountNotFound = repository.ErrAccountNotFound
)

type Clock func() time.Time

type Service interface {
	Detail(ctx context.Context, uid int64) (domain.Wallet, error)
	// Refresh 可以重复调用, 没有到期收入时返回 0
	Refresh(ctx context.Context, uid int64) (decimal.Decimal, error)
	Withdraw(ctx context.Context, uid int64) (domain.Withdrawal, error)
}

type service struct {
	repo  repository.WalletRepository
	cfg   domain.Config
	clock Clock
}

func NewService(repo repository.WalletRepository, cfg domain.Config, clock Clock) Service {
	return &service{repo: repo, cfg: cfg, clock: clock}
}

func (s *service) Detail(ctx context.Context, uid int64) (domain.Wallet, error) {
	return s.repo.Find(ctx, uid)
}

func (s *service) Refresh(ctx context.Context, uid int64) (decimal.Decimal, error) {
	return s.repo.Refresh(ctx, uid, s.clock())
}

func (s *service) Withdraw(ctx context.Context, uid int64) (domain.Withdrawal, error) {
	now := s.clock()
	if !s.cfg.InWindow(now) {
		return domain.Withdrawal{}, fmt.Errorf("%w, 今天是 %d 号", ErrWindowClosed, now.Day())
	}
	return s.repo.Withdraw(ctx, uid, s.cfg.Minimum, now)
}
