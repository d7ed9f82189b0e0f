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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/webnovel/internal/wallet/internal/domain"
	"github.com/ecodeclub/webnovel/internal/wallet/internal/repository/dao"
	"github.com/shopspring/decimal"
)

var (
	ErrAccountNotFound = dao.ErrAccountNotFound
	ErrBelowMinimum    = dao.ErrBelowMinimum
)

type WalletRepository interface {
	Find(ctx context.Context, uid int64) (domain.Wallet, error)
	Refresh(ctx context.Context, uid int64, now time.Time) (decimal.Decimal, error)
	Withdraw(ctx context.Context, uid int64, minimum decimal.Decimal, now time.Time) (domain.Withdrawal, error)
}

type walletRepository struct {
	dao dao.WalletDAO
}

func NewWalletRepository(d dao.WalletDAO) WalletRepository {
	return &walletRepository{dao: d}
}

func (r *walletRepository) Find(ctx context.Context, uid int64) (domain.Wallet, error) {
	acc, err := r.dao.FindAccount(ctx, uid)
	if err != nil {
		return domain.Wallet{}, err
	}
	return domain.Wallet{
		Uid:       acc.Uid,
		Available: acc.SaldoDisponivel,
		Pending:   acc.SaldoPendente,
	}, nil
}

func (r *walletRepository) Refresh(ctx context.Context, uid int64, now time.Time) (decimal.Decimal, error) {
	return r.dao.Refresh(ctx, uid, now.UnixMilli())
}

func (r *walletRepository) Withdraw(ctx context.Context, uid int64, minimum decimal.Decimal, now time.Time) (domain.Withdrawal, error) {
	w, err := r.dao.Withdraw(ctx, uid, minimum, now.UnixMilli())
	if err != nil {
		return domain.Withdrawal{}, err
	}
	return domain.Withdrawal{
		Id:     w.Id,
		Uid:    w.Uid,
		Amount: w.Amount,
		Ctime:  w.Ctime,
	}, nil
}
