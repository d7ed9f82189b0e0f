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
	"math"

	"github.com/ecodeclub/webnovel/internal/economy/internal/domain"
	"github.com/ecodeclub/webnovel/internal/economy/internal/repository"
)

var (
	ErrInvalidAmount          = errors.New("金额必须大于 0")
	ErrInvalidLevels          = errors.New("升级数不合法")
	ErrNotRated               = errors.New("投票前必须先评分")
	ErrInsufficientEngagement = errors.New("阅读章节数不足")

	ErrStoryNotFound     = repository.ErrStoryNotFound
	ErrAccountNotFound   = repository.ErrAccountNotFound
	ErrAccountBanned     = repository.ErrAccountBanned
	ErrSelfVote          = repository.ErrSelfVote
	ErrFanficStory       = repository.ErrFanficStory
	ErrInsufficientCoins = repository.ErrInsufficientCoins
)

//go:generate mockgen -source=./economy.go -package=economymocks -destination=../../mocks/economy.mock.go -typed Service
type Service interface {
	// Vote 给作品打赏金币, 要求先评分并且读过足够多的章节
	Vote(ctx context.Context, v domain.Vote) error
	// LevelUp levels 为 0 时按升一级处理
	LevelUp(ctx context.Context, l domain.LevelUp) (int64, error)
	// RegisterReading 重复阅读同一章节不做任何修改, 返回是否首次阅读
	RegisterReading(ctx context.Context, r domain.Reading) (bool, error)
}

type service struct {
	repo repository.EconomyRepository
	cfg  domain.Config
}

func NewService(repo repository.EconomyRepository, cfg domain.Config) Service {
	return &service{repo: repo, cfg: cfg}
}

func (s *service) Vote(ctx context.Context, v domain.Vote) error {
	if v.Amount <= 0 {
		return fmt.Errorf("%w, amount %d", ErrInvalidAmount, v.Amount)
	}
	// 资格检查在事务外, 评分和阅读记录只增不减
	rated, err := s.repo.HasRated(ctx, v.Uid, v.StoryId)
	if err != nil {
		return err
	}
	if !rated {
		return ErrNotRated
	}
	cnt, err := s.repo.CountChaptersRead(ctx, v.Uid, v.StoryId)
	if err != nil {
		return err
	}
	if cnt < s.cfg.MinChaptersRead {
		return fmt.Errorf("%w, 已读 %d, 需要 %d", ErrInsufficientEngagement, cnt, s.cfg.MinChaptersRead)
	}
	return s.repo.Donate(ctx, v)
}

func (s *service) LevelUp(ctx context.Context, l domain.LevelUp) (int64, error) {
	if l.Levels < 0 {
		return 0, fmt.Errorf("%w, levels %d", ErrInvalidLevels, l.Levels)
	}
	if l.Levels == 0 {
		l.Levels = 1
	}
	// 总价不能溢出 int64
	if s.cfg.LevelCost > 0 && l.Levels > math.MaxInt64/s.cfg.LevelCost {
		return 0, fmt.Errorf("%w, levels %d 超出上限 %d", ErrInvalidLevels, l.Levels, math.MaxInt64/s.cfg.LevelCost)
	}
	return s.repo.LevelUp(ctx, l, s.cfg.LevelCost, s.cfg.AdFreeLevel)
}

func (s *service) RegisterReading(ctx context.Context, r domain.Reading) (bool, error) {
	return s.repo.RegisterReading(ctx, r, s.cfg.ReadingReward)
}
