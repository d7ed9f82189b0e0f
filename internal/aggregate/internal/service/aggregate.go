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

	"github.com/ecodeclub/webnovel/internal/aggregate/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrStoryNotFound   = repository.ErrStoryNotFound
	ErrAccountNotFound = repository.ErrAccountNotFound
)

// FounderBadgeLimit 先驱作者徽章最多发放的数量
const FounderBadgeLimit = 100

type Service interface {
	RecomputeRating(ctx context.Context, storyId int64) error
	// GrantFounderBadge 返回是否发放了徽章
	GrantFounderBadge(ctx context.Context, autorId int64) (bool, error)
	// SyncFollowCounts 关注和取消关注之后, 按关注关系重新统计两边的计数
	SyncFollowCounts(ctx context.Context, followerId, followedId int64) error
}

type service struct {
	repo   repository.AggregateRepository
	logger *elog.Component
}

func NewService(repo repository.AggregateRepository) Service {
	return &service{repo: repo, logger: elog.DefaultLogger}
}

func (s *service) RecomputeRating(ctx context.Context, storyId int64) error {
	avg, votes, err := s.repo.RecomputeRating(ctx, storyId)
	if err != nil {
		return err
	}
	s.logger.Debug("重新计算作品评分",
		elog.Int64("storyId", storyId),
		elog.Any("rating", avg),
		elog.Int64("votes", votes))
	return nil
}

func (s *service) GrantFounderBadge(ctx context.Context, autorId int64) (bool, error) {
	granted, err := s.repo.GrantFounderBadge(ctx, autorId, FounderBadgeLimit)
	if err == nil && granted {
		s.logger.Info("发放先驱作者徽章", elog.Int64("uid", autorId))
	}
	return granted, err
}

func (s *service) SyncFollowCounts(ctx context.Context, followerId, followedId int64) error {
	followers, following, err := s.repo.RecountFollows(ctx, followerId, followedId)
	if err != nil {
		return err
	}
	s.logger.Debug("重新统计关注数",
		elog.Int64("followerId", followerId),
		elog.Int64("following", following),
		elog.Int64("followedId", followedId),
		elog.Int64("followers", followers))
	return nil
}
