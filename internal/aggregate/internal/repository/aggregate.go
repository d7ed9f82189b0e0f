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

	"github.com/ecodeclub/webnovel/internal/aggregate/internal/repository/dao"
)

var (
	ErrStoryNotFound   = dao.ErrStoryNotFound
	ErrAccountNotFound = dao.ErrAccountNotFound
)

type AggregateRepository interface {
	RecomputeRating(ctx context.Context, storyId int64) (float64, int64, error)
	GrantFounderBadge(ctx context.Context, autorId, limit int64) (bool, error)
	RecountFollows(ctx context.Context, followerId, followedId int64) (followers int64, following int64, err error)
}

// NewAggregateRepository 聚合只有数据库一个数据源, 直接使用 DAO
func NewAggregateRepository(d dao.AggregateDAO) AggregateRepository {
	return d
}
