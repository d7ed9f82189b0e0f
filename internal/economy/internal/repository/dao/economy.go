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
	"gorm.io/gorm"
)

var (
	ErrStoryNotFound     = errors.New("作品不存在")
	ErrAccountNotFound   = errors.New("账户不存在")
	ErrAccountBanned     = errors.New("账户已被封禁")
	ErrSelfVote          = errors.New("不能给自己的作品投票")
	ErrFanficStory       = errors.New("同人作品不能接受投票")
	ErrInsufficientCoins = errors.New("金币不足")
)

type Account = ledger.Account
type Story = ledger.Story
type ChapterView = ledger.ChapterView

type EconomyDAO interface {
	HasRated(ctx context.Context, uid, storyId int64) (bool, error)
	CountChaptersRead(ctx context.Context, uid, storyId int64) (int64, error)
	// Donate 扣减金币并累加作品的打赏数, 要么都成功要么都失败
	Donate(ctx context.Context, uid, storyId, amount int64) error
	// LevelUp 返回升级之后的等级
	LevelUp(ctx context.Context, uid, levels, levelCost, adFreeLevel int64) (int64, error)
	// RegisterReading 返回是否是首次阅读
	RegisterReading(ctx context.Context, v ChapterView, reward int64) (bool, error)
}

type EconomyGORMDAO struct {
	db     *egorm.Component
	runner *txn.Runner
}

func NewEconomyGORMDAO(db *egorm.Component, runner *txn.Runner) EconomyDAO {
	return &EconomyGORMDAO{db: db, runner: runner}
}

func (d *EconomyGORMDAO) HasRated(ctx context.Context, uid, storyId int64) (bool, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&ledger.Rating{}).
		Where("obra_id = ? AND uid = ?", storyId, uid).
		Count(&cnt).Error
	return cnt > 0, err
}

func (d *EconomyGORMDAO) CountChaptersRead(ctx context.Context, uid, storyId int64) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&ChapterView{}).
		Where("uid = ? AND obra_id = ?", uid, storyId).
		Count(&cnt).Error
	return cnt, err
}

func (d *EconomyGORMDAO) Donate(ctx context.Context, uid, storyId, amount int64) error {
	return d.runner.Do(ctx, func(tx *gorm.DB) error {
		story, err := d.findStory(tx, storyId)
		if err != nil {
			return err
		}
		acc, err := d.findAccount(tx, uid)
		if err != nil {
			return err
		}
		if story.AutorId == uid {
			return ErrSelfVote
		}
		if story.IsFanfic() {
			return ErrFanficStory
		}
		if acc.Banned {
			return ErrAccountBanned
		}
		if acc.Coins < amount {
			return fmt.Errorf("%w, 余额 %d, 需要 %d", ErrInsufficientCoins, acc.Coins, amount)
		}
		now := time.Now().UnixMilli()
		err = txn.CompareAndSwap(tx, &Account{}, acc.Id, acc.Version, map[string]any{
			"coins": acc.Coins - amount,
			"utime": now,
		})
		if err != nil {
			return err
		}
		return txn.CompareAndSwap(tx, &Story{}, story.Id, story.Version, map[string]any{
			"monthly_coins": story.MonthlyCoins + amount,
			"total_coins":   story.TotalCoins + amount,
			"utime":         now,
		})
	})
}

func (d *EconomyGORMDAO) LevelUp(ctx context.Context, uid, levels, levelCost, adFreeLevel int64) (int64, error) {
	var newLevel int64
	err := d.runner.Do(ctx, func(tx *gorm.DB) error {
		acc, err := d.findAccount(tx, uid)
		if err != nil {
			return err
		}
		if acc.Banned {
			return ErrAccountBanned
		}
		cost := levels * levelCost
		if acc.Coins < cost {
			return fmt.Errorf("%w, 余额 %d, 需要 %d", ErrInsufficientCoins, acc.Coins, cost)
		}
		newLevel = acc.Level + levels
		return txn.CompareAndSwap(tx, &Account{}, acc.Id, acc.Version, map[string]any{
			"coins":      acc.Coins - cost,
			"level":      newLevel,
			"is_ad_free": newLevel >= adFreeLevel,
			"utime":      time.Now().UnixMilli(),
		})
	})
	return newLevel, err
}

func (d *EconomyGORMDAO) RegisterReading(ctx context.Context, v ChapterView, reward int64) (bool, error) {
	var created bool
	err := d.runner.Do(ctx, func(tx *gorm.DB) error {
		created = false
		var cnt int64
		err := tx.Model(&ChapterView{}).
			Where("uid = ? AND chapter_id = ?", v.Uid, v.ChapterId).
			Count(&cnt).Error
		if err != nil || cnt > 0 {
			return err
		}
		story, err := d.findStory(tx, v.ObraId)
		if err != nil {
			return err
		}
		acc, err := d.findAccount(tx, v.Uid)
		if err != nil {
			return err
		}
		now := time.Now().UnixMilli()
		v.Id = 0
		v.Ctime = now
		err = tx.Create(&v).Error
		if ledger.IsUniqueIndexError(err) {
			// 并发的同一章节阅读, 重试的时候会看到已经存在的记录
			return fmt.Errorf("%w: %w", txn.ErrConflict, err)
		}
		if err != nil {
			return err
		}
		err = txn.CompareAndSwap(tx, &Story{}, story.Id, story.Version, map[string]any{
			"views": story.Views + 1,
			"utime": now,
		})
		if err != nil {
			return err
		}
		err = txn.CompareAndSwap(tx, &Account{}, acc.Id, acc.Version, map[string]any{
			"chapters_read": acc.ChaptersRead + 1,
			"coins":         acc.Coins + reward,
			"utime":         now,
		})
		if err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}

func (d *EconomyGORMDAO) findStory(tx *gorm.DB, storyId int64) (Story, error) {
	var story Story
	err := tx.Where("id = ? AND status = ?", storyId, ledger.StoryStatusPublished).First(&story).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Story{}, fmt.Errorf("%w, id %d", ErrStoryNotFound, storyId)
	}
	return story, err
}

func (d *EconomyGORMDAO) findAccount(tx *gorm.DB, uid int64) (Account, error) {
	var acc Account
	err := tx.Where("uid = ?", uid).First(&acc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Account{}, fmt.Errorf("%w, uid %d", ErrAccountNotFound, uid)
	}
	return acc, err
}
