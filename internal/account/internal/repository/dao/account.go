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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/webnovel/internal/pkg/ledger"
	"github.com/ego-component/egorm"
)

var (
	ErrDuplicatedAccount      = errors.New("账户已存在")
	ErrDuplicatedReferralCode = errors.New("推荐码重复")
)

type Account = ledger.Account
type Notification = ledger.Notification

type AccountDAO interface {
	Create(ctx context.Context, a Account) (int64, error)
	FindByUid(ctx context.Context, uid int64) (Account, error)
	FindByReferralCode(ctx context.Context, code string) (Account, error)
	FindNotifications(ctx context.Context, uid int64, offset, limit int) ([]Notification, error)
	CountNotifications(ctx context.Context, uid int64) (int64, error)
	MarkNotificationsRead(ctx context.Context, uid int64, ids []int64) (int64, error)
}

type AccountGORMDAO struct {
	db *egorm.Component
}

func NewAccountGORMDAO(db *egorm.Component) AccountDAO {
	return &AccountGORMDAO{db: db}
}

func (d *AccountGORMDAO) Create(ctx context.Context, a Account) (int64, error) {
	now := time.Now().UnixMilli()
	a.Ctime, a.Utime = now, now
	a.Version = 1
	if a.Role == "" {
		a.Role = ledger.RoleUser
	}
	if !a.Badges.Valid {
		a.Badges = sqlx.JsonColumn[[]string]{Val: []string{}, Valid: true}
	}
	err := d.db.WithContext(ctx).Create(&a).Error
	if ledger.IsUniqueIndexError(err) {
		// uid 和推荐码都有唯一索引, 需要区分是哪一个冲突了
		var cnt int64
		if e := d.db.WithContext(ctx).Model(&Account{}).
			Where("uid = ?", a.Uid).Count(&cnt).Error; e != nil {
			return 0, e
		}
		if cnt > 0 {
			return 0, ErrDuplicatedAccount
		}
		return 0, ErrDuplicatedReferralCode
	}
	return a.Id, err
}

func (d *AccountGORMDAO) FindByUid(ctx context.Context, uid int64) (Account, error) {
	var res Account
	err := d.db.WithContext(ctx).Where("uid = ?", uid).First(&res).Error
	return res, err
}

func (d *AccountGORMDAO) FindByReferralCode(ctx context.Context, code string) (Account, error) {
	var res Account
	err := d.db.WithContext(ctx).
		Where("referral_code = ?", code).
		First(&res).Error
	return res, err
}

func (d *AccountGORMDAO) FindNotifications(ctx context.Context, uid int64, offset, limit int) ([]Notification, error) {
	var res []Notification
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *AccountGORMDAO) CountNotifications(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Notification{}).
		Where("uid = ?", uid).Count(&res).Error
	return res, err
}

func (d *AccountGORMDAO) MarkNotificationsRead(ctx context.Context, uid int64, ids []int64) (int64, error) {
	res := d.db.WithContext(ctx).Model(&Notification{}).
		Where("uid = ? AND id IN ?", uid, ids).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
