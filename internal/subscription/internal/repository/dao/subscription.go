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
	"fmt"
	"time"

	"github.com/ecodeclub/webnovel/internal/pkg/ledger"
	"github.com/ecodeclub/webnovel/internal/pkg/txn"
	"github.com/ego-component/egorm"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrReferralAlreadyUsed = errors.New("已经使用过推荐码")
	ErrDuplicatedRecord    = errors.New("订阅记录重复")
	ErrAccountNotFound     = errors.New("账户不存在")
)

type SubscriptionDAO interface {
	FindByUid(ctx context.Context, uid int64) (Subscription, error)
	// Subscribe 续订、写流水、登记推荐码、给推荐人记账, 在一个事务里完成
	Subscribe(ctx context.Context, r SubscriptionRecord, bonus decimal.Decimal, maturesAt int64) (Subscription, error)
}

type SubscriptionGORMDAO struct {
	db     *egorm.Component
	runner *txn.Runner
}

func NewSubscriptionGORMDAO(db *egorm.Component, runner *txn.Runner) SubscriptionDAO {
	return &SubscriptionGORMDAO{db: db, runner: runner}
}

func (d *SubscriptionGORMDAO) FindByUid(ctx context.Context, uid int64) (Subscription, error) {
	var s Subscription
	err := d.db.WithContext(ctx).Where("uid = ?", uid).First(&s).Error
	return s, err
}

func (d *SubscriptionGORMDAO) Subscribe(ctx context.Context, r SubscriptionRecord, bonus decimal.Decimal, maturesAt int64) (Subscription, error) {
	var res Subscription
	err := d.runner.Do(ctx, func(tx *gorm.DB) error {
		now := time.Now()
		if r.ReferrerId > 0 {
			err := d.useReferral(tx, r, now.UnixMilli())
			if err != nil {
				return err
			}
		}
		sub, err := d.upsert(tx, r.Uid, r.Days, now)
		if err != nil {
			return err
		}
		record := r
		record.Ctime, record.Utime = now.UnixMilli(), now.UnixMilli()
		err = tx.Create(&record).Error
		if ledger.IsUniqueIndexError(err) {
			return fmt.Errorf("%w, key %s", ErrDuplicatedRecord, r.Key)
		}
		if err != nil {
			return err
		}
		if r.ReferrerId > 0 {
			err = d.creditReferrer(tx, record, bonus, maturesAt, now.UnixMilli())
			if err != nil {
				return err
			}
		}
		res = sub
		return nil
	})
	return res, err
}

func (d *SubscriptionGORMDAO) useReferral(tx *gorm.DB, r SubscriptionRecord, now int64) error {
	var cnt int64
	err := tx.Model(&ReferralUse{}).Where("invitee_id = ?", r.Uid).Count(&cnt).Error
	if err != nil {
		return err
	}
	if cnt > 0 {
		return fmt.Errorf("%w, uid %d", ErrReferralAlreadyUsed, r.Uid)
	}
	err = tx.Create(&ReferralUse{
		InviteeId:  r.Uid,
		ReferrerId: r.ReferrerId,
		Code:       r.ReferralCode,
		Ctime:      now,
	}).Error
	if ledger.IsUniqueIndexError(err) {
		return fmt.Errorf("%w, uid %d", ErrReferralAlreadyUsed, r.Uid)
	}
	return err
}

// upsert 已过期的重新激活, 未过期的在原结束时间上续期
func (d *SubscriptionGORMDAO) upsert(tx *gorm.DB, uid, days int64, now time.Time) (Subscription, error) {
	extend := time.Hour * 24 * time.Duration(days)
	var sub Subscription
	err := tx.Where("uid = ?", uid).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sub = Subscription{
			Uid:     uid,
			StartAt: now.UnixMilli(),
			EndAt:   now.Add(extend).UnixMilli(),
			Version: 1,
			Ctime:   now.UnixMilli(),
			Utime:   now.UnixMilli(),
		}
		err = tx.Create(&sub).Error
		if ledger.IsUniqueIndexError(err) {
			// 并发的首次订阅, 重试时走续期分支
			return Subscription{}, fmt.Errorf("%w: %w", txn.ErrConflict, err)
		}
		return sub, err
	}
	if err != nil {
		return Subscription{}, err
	}
	if sub.EndAt < now.UnixMilli() {
		sub.StartAt = now.UnixMilli()
		sub.EndAt = now.Add(extend).UnixMilli()
	} else {
		sub.EndAt = time.UnixMilli(sub.EndAt).Add(extend).UnixMilli()
	}
	err = txn.CompareAndSwap(tx, &Subscription{}, sub.Id, sub.Version, map[string]any{
		"start_at": sub.StartAt,
		"end_at":   sub.EndAt,
		"utime":    now.UnixMilli(),
	})
	sub.Version++
	return sub, err
}

func (d *SubscriptionGORMDAO) creditReferrer(tx *gorm.DB, r SubscriptionRecord, bonus decimal.Decimal, maturesAt, now int64) error {
	var acc ledger.Account
	err := tx.Where("uid = ?", r.ReferrerId).First(&acc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w, uid %d", ErrAccountNotFound, r.ReferrerId)
	}
	if err != nil {
		return err
	}
	err = txn.CompareAndSwap(tx, &ledger.Account{}, acc.Id, acc.Version, map[string]any{
		"saldo_pendente": acc.SaldoPendente.Add(bonus),
		"utime":          now,
	})
	if err != nil {
		return err
	}
	return tx.Create(&ledger.WalletEarning{
		Uid:       r.ReferrerId,
		Amount:    bonus,
		Biz:       ledger.EarningBizReferral,
		BizId:     r.Id,
		Status:    ledger.EarningStatusPending,
		MaturesAt: maturesAt,
		Ctime:     now,
		Utime:     now,
	}).Error
}
