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
	"time"

	"github.com/ecodeclub/webnovel/internal/pkg/ledger"
	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type Story = ledger.Story
type Rating = ledger.Rating
type Follower = ledger.Follower

type InteractiveDAO interface {
	FindStory(ctx context.Context, storyId int64) (Story, error)
	FindRating(ctx context.Context, uid, storyId int64) (Rating, error)
	UpsertRating(ctx context.Context, r Rating) error
	AccountExists(ctx context.Context, uid int64) (bool, error)
	// CreateFollow 返回关注关系是否真的新建了
	CreateFollow(ctx context.Context, followerId, followedId int64) (bool, error)
	// DeleteFollow 返回关注关系是否真的删除了
	DeleteFollow(ctx context.Context, followerId, followedId int64) (bool, error)
}

type InteractiveGORMDAO struct {
	db *egorm.Component
}

func NewInteractiveDAO(db *egorm.Component) InteractiveDAO {
	return &InteractiveGORMDAO{db: db}
}

func (d *InteractiveGORMDAO) FindStory(ctx context.Context, storyId int64) (Story, error) {
	var res Story
	err := d.db.WithContext(ctx).
		Where("id = ? AND status = ?", storyId, ledger.StoryStatusPublished).
		First(&res).Error
	return res, err
}

func (d *InteractiveGORMDAO) FindRating(ctx context.Context, uid, storyId int64) (Rating, error) {
	var res Rating
	err := d.db.WithContext(ctx).
		Where("obra_id = ? AND uid = ?", storyId, uid).
		First(&res).Error
	return res, err
}

func (d *InteractiveGORMDAO) UpsertRating(ctx context.Context, r Rating) error {
	now := time.Now().UnixMilli()
	r.Ctime, r.Utime = now, now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "obra_id"}, {Name: "uid"}},
		DoUpdates: clause.Assignments(map[string]any{
			"rating": r.Rating,
			"utime":  now,
		}),
	}).Create(&r).Error
}

func (d *InteractiveGORMDAO) AccountExists(ctx context.Context, uid int64) (bool, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&ledger.Account{}).
		Where("uid = ?", uid).Count(&cnt).Error
	return cnt > 0, err
}

func (d *InteractiveGORMDAO) CreateFollow(ctx context.Context, followerId, followedId int64) (bool, error) {
	f := Follower{
		FollowerId: followerId,
		FollowedId: followedId,
		Ctime:      time.Now().UnixMilli(),
	}
	res := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&f)
	return res.RowsAffected > 0, res.Error
}

func (d *InteractiveGORMDAO) DeleteFollow(ctx context.Context, followerId, followedId int64) (bool, error) {
	res := d.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerId, followedId).
		Delete(&Follower{})
	return res.RowsAffected > 0, res.Error
}
