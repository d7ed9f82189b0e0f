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
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/webnovel/internal/account/internal/domain"
	"github.com/ecodeclub/webnovel/internal/account/internal/repository/dao"
)

var (
	ErrDuplicatedAccount      = dao.ErrDuplicatedAccount
	ErrDuplicatedReferralCode = dao.ErrDuplicatedReferralCode
)

type AccountRepository interface {
	Create(ctx context.Context, a domain.Account) (int64, error)
	FindByUid(ctx context.Context, uid int64) (domain.Account, error)
	FindByReferralCode(ctx context.Context, code string) (domain.Account, error)
	FindNotifications(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error)
	CountNotifications(ctx context.Context, uid int64) (int64, error)
	MarkNotificationsRead(ctx context.Context, uid int64, ids []int64) (int64, error)
}

type accountRepository struct {
	dao dao.AccountDAO
}

func NewAccountRepository(d dao.AccountDAO) AccountRepository {
	return &accountRepository{dao: d}
}

func (r *accountRepository) Create(ctx context.Context, a domain.Account) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(a))
}

func (r *accountRepository) FindByUid(ctx context.Context, uid int64) (domain.Account, error) {
	a, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return domain.Account{}, err
	}
	return r.toDomain(a), nil
}

func (r *accountRepository) FindByReferralCode(ctx context.Context, code string) (domain.Account, error) {
	a, err := r.dao.FindByReferralCode(ctx, code)
	if err != nil {
		return domain.Account{}, err
	}
	return r.toDomain(a), nil
}

func (r *accountRepository) FindNotifications(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error) {
	ns, err := r.dao.FindNotifications(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ns, func(idx int, src dao.Notification) domain.Notification {
		return domain.Notification{
			Id:      src.Id,
			Type:    src.Type,
			Title:   src.Title,
			Content: src.Content,
			Read:    src.Read,
			Ctime:   src.Ctime,
		}
	}), nil
}

func (r *accountRepository) CountNotifications(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountNotifications(ctx, uid)
}

func (r *accountRepository) MarkNotificationsRead(ctx context.Context, uid int64, ids []int64) (int64, error) {
	return r.dao.MarkNotificationsRead(ctx, uid, ids)
}

func (r *accountRepository) toEntity(a domain.Account) dao.Account {
	return dao.Account{
		Uid:    a.Uid,
		Name:   a.Name,
		Role:   a.Role,
		Badges: sqlx.JsonColumn[[]string]{Val: a.Badges, Valid: a.Badges != nil},
		ReferralCode: sql.NullString{
			String: a.ReferralCode,
			Valid:  a.ReferralCode != "",
		},
	}
}

func (r *accountRepository) toDomain(a dao.Account) domain.Account {
	return domain.Account{
		Uid:            a.Uid,
		Name:           a.Name,
		Coins:          a.Coins,
		Level:          a.Level,
		IsAdFree:       a.IsAdFree,
		Badges:         a.Badges.Val,
		Banned:         a.Banned,
		Role:           a.Role,
		FollowersCount: a.FollowersCount,
		FollowingCount: a.FollowingCount,
		ChaptersRead:   a.ChaptersRead,
		Wallet: domain.Wallet{
			Available: a.SaldoDisponivel,
			Pending:   a.SaldoPendente,
		},
		ReferralCode: a.ReferralCode.String,
		Ctime:        a.Ctime,
	}
}
