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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/webnovel/internal/pkg/ledger"
	"github.com/ecodeclub/webnovel/internal/pkg/txn"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrStoryNotFound   = errors.New("作品不存在")
	ErrAccountNotFound = errors.New("账户不存在")
)

// 先驱作者徽章的发放计数
const founderCounter = "founder_authors"

type AggregateDAO interface {
	// RecomputeRating 用全部评分重新计算平均分, 返回平均分和评分人数
	RecomputeRating(ctx context.Context, storyId int64) (float64, int64, error)
	// GrantFounderBadge 发放数量没到 limit 并且作者还没有徽章的时候发放, 返回是否发放
	GrantFounderBadge(ctx context.Context, autorId, limit int64) (bool, error)
	// RecountFollows 按关注关系重新统计 followed 的粉丝数和 follower 的关注数.
	// 重复消费或者丢失的事件都会在下一次统计时被修正
	RecountFollows(ctx context.Context, followerId, followedId int64) (followers int64, following int64, err error)
}

type AggregateGORMDAO struct {
	db     *egorm.Component
	runner *txn.Runner
}

func NewAggregateGORMDAO(db *egorm.Component, runner *txn.Runner) AggregateDAO {
	return &AggregateGORMDAO{db: db, runner: runner}
}

func (d *AggregateGORMDAO) RecomputeRating(ctx context.Context, storyId int64) (float64, int64, error) {
	var (
		avg   float64
		votes int64
	)
	err := d.runner.Do(ctx, func(tx *gorm.DB) error {
		var story ledger.Story
		err := tx.Where("id = ?", storyId).First(&story).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w, id %d", ErrStoryNotFound, storyId)
		}
		if err != nil {
			return err
		}
		var ratings []ledger.Rating
		err = tx.Where("obra_id = ?", storyId).Find(&ratings).Error
		if err != nil {
			return err
		}
		avg, votes = 0, int64(len(ratings))
		if votes > 0 {
			var sum int
			for _, r := range ratings {
				sum += r.Rating
			}
			avg = float64(sum) / float64(votes)
		}
		return txn.CompareAndSwap(tx, &ledger.Story{}, story.Id, story.Version, map[string]any{
			"rating": avg,
			"votes":  votes,
			"utime":  time.Now().UnixMilli(),
		})
	})
	return avg, votes, err
}

func (d *AggregateGORMDAO) GrantFounderBadge(ctx context.Context, autorId, limit int64) (bool, error) {
	var granted bool
	err := d.runner.Do(ctx, func(tx *gorm.DB) error {
		granted = false
		counter, err := d.findCounter(tx, founderCounter)
		if err != nil {
			return err
		}
		if counter.Value >= limit {
			return nil
		}
		acc, err := d.findAccount(tx, autorId)
		if err != nil {
			return err
		}
		if acc.HasBadge(ledger.BadgePioneer) {
			return nil
		}
		now := time.Now().UnixMilli()
		err = txn.CompareAndSwap(tx, &ledger.GlobalCounter{}, counter.Id, counter.Version, map[string]any{
			"value": counter.Value + 1,
			"utime": now,
		})
		if err != nil {
			return err
		}
		badges := append(append([]string{}, acc.Badges.Val...), ledger.BadgePioneer)
		err = txn.CompareAndSwap(tx, &ledger.Account{}, acc.Id, acc.Version, map[string]any{
			"badges": sqlx.JsonColumn[[]string]{Val: badges, Valid: true},
			"utime":  now,
		})
		if err != nil {
			return err
		}
		err = tx.Create(&ledger.Notification{
			Uid:     autorId,
			Type:    ledger.NotificationTypeBadge,
			Title:   "获得先驱作者徽章",
			Content: fmt.Sprintf("你是平台前 %d 位发布作品的作者之一", limit),
			Ctime:   now,
		}).Error
		if err != nil {
			return err
		}
		granted = true
		return nil
	})
	return granted, err
}

func (d *AggregateGORMDAO) RecountFollows(ctx context.Context, followerId, followedId int64) (int64, int64, error) {
	var followers, following int64
	err := d.runner.Do(ctx, func(tx *gorm.DB) error {
		followed, err := d.findAccount(tx, followedId)
		if err != nil {
			return err
		}
		follower, err := d.findAccount(tx, followerId)
		if err != nil {
			return err
		}
		err = tx.Model(&ledger.Follower{}).Where("followed_id = ?", followedId).Count(&followers).Error
		if err != nil {
			return err
		}
		err = tx.Model(&ledger.Follower{}).Where("follower_id = ?", followerId).Count(&following).Error
		if err != nil {
			return err
		}
		now := time.Now().UnixMilli()
		if followed.Id == follower.Id {
			return txn.CompareAndSwap(tx, &ledger.Account{}, followed.Id, followed.Version, map[string]any{
				"followers_count": followers,
				"following_count": following,
				"utime":           now,
			})
		}
		err = txn.CompareAndSwap(tx, &ledger.Account{}, followed.Id, followed.Version, map[string]any{
			"followers_count": followers,
			"utime":           now,
		})
		if err != nil {
			return err
		}
		return txn.CompareAndSwap(tx, &ledger.Account{}, follower.Id, follower.Version, map[string]any{
			"following_count": following,
			"utime":           now,
		})
	})
	return followers, following, err
}

// findCounter 计数器不存在的时候从 0 开始
func (d *AggregateGORMDAO) findCounter(tx *gorm.DB, name string) (ledger.GlobalCounter, error) {
	var c ledger.GlobalCounter
	err := tx.Where("name = ?", name).First(&c).Error
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c, err
	}
	now := time.Now().UnixMilli()
	c = ledger.GlobalCounter{Name: name, Version: 1, Ctime: now, Utime: now}
	err = tx.Create(&c).Error
	if ledger.IsUniqueIndexError(err) {
		return ledger.GlobalCounter{}, fmt.Errorf("%w: %w", txn.ErrConflict, err)
	}
	return c, err
}

func (d *AggregateGORMDAO) findAccount(tx *gorm.DB, uid int64) (ledger.Account, error) {
	var acc ledger.Account
	err := tx.Where("uid = ?", uid).First(&acc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ledger.Account{}, fmt.Errorf("%w, uid %d", ErrAccountNotFound, uid)
	}
	return acc, err
}
