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

	"github.com/ecodeclub/webnovel/internal/interactive/internal/domain"
	"github.com/ecodeclub/webnovel/internal/interactive/internal/events"
	"github.com/ecodeclub/webnovel/internal/interactive/internal/repository"
	"github.com/ecodeclub/webnovel/internal/pkg/mqx"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrInvalidRating   = errors.New("评分必须在 1 到 5 之间")
	ErrStoryNotFound   = repository.ErrStoryNotFound
	ErrSelfFollow      = errors.New("不能关注自己")
	ErrAccountNotFound = errors.New("用户不存在")
)

type InteractiveService interface {
	StoryStat(ctx context.Context, storyId, uid int64) (domain.StoryStat, error)
	// Rate 新增或者修改评分, 评分汇总由异步消费者完成
	Rate(ctx context.Context, r domain.Rating) error
	Follow(ctx context.Context, followerId, followedId int64) error
	Unfollow(ctx context.Context, followerId, followedId int64) error
}

type interactiveService struct {
	repo           repository.InteractiveRepository
	ratingProducer mqx.Producer[events.RatingEvent]
	followProducer mqx.Producer[events.FollowEvent]
	logger         *elog.Component
}

func NewService(repo repository.InteractiveRepository,
	ratingProducer mqx.Producer[events.RatingEvent],
	followProducer mqx.Producer[events.FollowEvent]) InteractiveService {
	return &interactiveService{
		repo:           repo,
		ratingProducer: ratingProducer,
		followProducer: followProducer,
		logger:         elog.DefaultLogger,
	}
}

func (i *interactiveService) StoryStat(ctx context.Context, storyId, uid int64) (domain.StoryStat, error) {
	return i.repo.StoryStat(ctx, storyId, uid)
}

func (i *interactiveService) Rate(ctx context.Context, r domain.Rating) error {
	if r.Rating < domain.MinRating || r.Rating > domain.MaxRating {
		return fmt.Errorf("%w, rating %d", ErrInvalidRating, r.Rating)
	}
	err := i.repo.Rate(ctx, r)
	if err != nil {
		return err
	}
	// 评分已经写入, 消息发送失败只影响平均分的刷新
	err = i.ratingProducer.Produce(ctx, events.RatingEvent{
		StoryId: r.StoryId,
		Uid:     r.Uid,
		Rating:  r.Rating,
	})
	if err != nil {
		i.logger.Error("发送评分事件失败",
			elog.FieldErr(err),
			elog.Int64("storyId", r.StoryId),
			elog.Int64("uid", r.Uid))
	}
	return nil
}

func (i *interactiveService) Follow(ctx context.Context, followerId, followedId int64) error {
	if followerId == followedId {
		return ErrSelfFollow
	}
	ok, err := i.repo.AccountExists(ctx, followedId)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w, uid %d", ErrAccountNotFound, followedId)
	}
	changed, err := i.repo.Follow(ctx, domain.Follow{FollowerId: followerId, FollowedId: followedId})
	if err != nil || !changed {
		return err
	}
	i.produceFollowEvent(ctx, followerId, followedId, events.FollowActionFollow)
	return nil
}

func (i *interactiveService) Unfollow(ctx context.Context, followerId, followedId int64) error {
	changed, err := i.repo.Unfollow(ctx, domain.Follow{FollowerId: followerId, FollowedId: followedId})
	if err != nil || !changed {
		return err
	}
	i.produceFollowEvent(ctx, followerId, followedId, events.FollowActionUnfollow)
	return nil
}

func (i *interactiveService) produceFollowEvent(ctx context.Context, followerId, followedId int64, action string) {
	err := i.followProducer.Produce(ctx, events.FollowEvent{
		FollowerId: followerId,
		FollowedId: followedId,
		Action:     action,
	})
	if err != nil {
		i.logger.Error("发送关注事件失败",
			elog.FieldErr(err),
			elog.Int64("followerId", followerId),
			elog.Int64("followedId", followedId),
			elog.String("action", action))
	}
}
