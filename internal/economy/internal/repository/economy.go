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

	"github.com/ecodeclub/webnovel/internal/economy/internal/domain"
	"github.com/ecodeclub/webnovel/internal/economy/internal/repository/dao"
)

var (
	ErrStoryNotFound     = dao.ErrStoryNotFound
	ErrAccountNotFound   = dao.ErrAccountNotFound
	ErrAccountBanned     = dao.ErrAccountBanned
	ErrSelfVote          = dao.ErrSelfVote
	ErrFanficStory       = dao.ErrFanficStory
	ErrInsufficientCoins = dao.ErrInsufficientCoins
)

type EconomyRepository interface {
	HasRated(ctx context.Context, uid, storyId int64) (bool, error)
	CountChaptersRead(ctx context.Context, uid, storyId int64) (int64, error)
	Donate(ctx context.Context, v domain.Vote) error
	LevelUp(ctx context.Context, l domain.LevelUp, levelCost, adFreeLevel int64) (int64, error)
	RegisterReading(ctx context.Context, r domain.Reading, reward int64) (bool, error)
}

type economyRepository struct {
	dao dao.EconomyDAO
}

func NewEconomyRepository(d dao.EconomyDAO) EconomyRepository {
	return &economyRepository{dao: d}
}

func (r *economyRepository) HasRated(ctx context.Context, uid, storyId int64) (bool, error) {
	return r.dao.HasRated(ctx, uid, storyId)
}

func (r *economyRepository) CountChaptersRead(ctx context.Context, uid, storyId int64) (int64, error) {
	return r.dao.CountChaptersRead(ctx, uid, storyId)
}

func (r *economyRepository) Donate(ctx context.Context, v domain.Vote) error {
	return r.dao.Donate(ctx, v.Uid, v.StoryId, v.Amount)
}

func (r *economyRepository) LevelUp(ctx context.Context, l domain.LevelUp, levelCost, adFreeLevel int64) (int64, error) {
	return r.dao.LevelUp(ctx, l.Uid, l.Levels, levelCost, adFreeLevel)
}

func (r *economyRepository) RegisterReading(ctx context.Context, rd domain.Reading, reward int64) (bool, error) {
	return r.dao.RegisterReading(ctx, dao.ChapterView{
		Uid:       rd.Uid,
		ChapterId: rd.ChapterId,
		ObraId:    rd.StoryId,
	}, reward)
}
