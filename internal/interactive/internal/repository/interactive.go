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
	"errors"

	"github.com/ecodeclub/webnovel/internal/interactive/internal/domain"
	"github.com/ecodeclub/webnovel/internal/interactive/internal/repository/dao"
	"github.com/ecodeclub/webnovel/internal/pkg/ledger"
)

var ErrStoryNotFound = errors.New("作品不存在")

type InteractiveRepository interface {
	StoryStat(ctx context.Context, storyId, uid int64) (domain.StoryStat, error)
	Rate(ctx context.Context, r domain.Rating) error
	AccountExists(ctx context.Context, uid int64) (bool, error)
	Follow(ctx context.Context, f domain.Follow) (bool, error)
	Unfollow(ctx context.Context, f domain.Follow) (bool, error)
}

type interactiveRepository struct {
	dao dao.InteractiveDAO
}

func NewInteractiveRepository(d dao.InteractiveDAO) InteractiveRepository {
	return &interactiveRepository{dao: d}
}

func (r *interactiveRepository) StoryStat(ctx context.Context, storyId, uid int64) (domain.StoryStat, error) {
	s, err := r.dao.FindStory(ctx, storyId)
	if errors.Is(err, ledger.ErrRecordNotFound) {
		return domain.StoryStat{}, ErrStoryNotFound
	}
	if err != nil {
		return domain.StoryStat{}, err
	}
	res := domain.StoryStat{
		StoryId: s.Id,
		Rating:  s.Rating,
		Votes:   s.Votes,
		Views:   s.Views,
	}
	rating, err := r.dao.FindRating(ctx, uid, storyId)
	switch {
	case err == nil:
		res.MyRating = rating.Rating
	case !errors.Is(err, ledger.ErrRecordNotFound):
		return domain.StoryStat{}, err
	}
	return res, nil
}

func (r *interactiveRepository) Rate(ctx context.Context, rating domain.Rating) error {
	_, err := r.dao.FindStory(ctx, rating.StoryId)
	if errors.Is(err, ledger.ErrRecordNotFound) {
		return ErrStoryNotFound
	}
	if err != nil {
		return err
	}
	return r.dao.UpsertRating(ctx, dao.Rating{
		ObraId: rating.StoryId,
		Uid:    rating.Uid,
		Rating: rating.Rating,
	})
}

func (r *interactiveRepository) AccountExists(ctx context.Context, uid int64) (bool, error) {
	return r.dao.AccountExists(ctx, uid)
}

func (r *interactiveRepository) Follow(ctx context.Context, f domain.Follow) (bool, error) {
	return r.dao.CreateFollow(ctx, f.FollowerId, f.FollowedId)
}

func (r *interactiveRepository) Unfollow(ctx context.Context, f domain.Follow) (bool, error) {
	return r.dao.DeleteFollow(ctx, f.FollowerId, f.FollowedId)
}
