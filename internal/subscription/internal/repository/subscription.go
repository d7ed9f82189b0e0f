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

	"github.com/ecodeclub/webnovel/internal/subscription/internal/domain"
	"github.com/ecodeclub/webnovel/internal/subscription/internal/repository/cache"
	"github.com/ecodeclub/webnovel/internal/subscription/internal/repository/dao"
	"gorm.io/gorm"
)

var (
	ErrReferralAlreadyUsed = dao.ErrReferralAlreadyUsed
	ErrDuplicatedRecord    = dao.ErrDuplicatedRecord
	ErrAccountNotFound     = dao.ErrAccountNotFound
	ErrKeyNotExist         = cache.ErrKeyNotExist
)

type SubscriptionRepository interface {
	FindByUid(ctx context.Context, uid int64) (domain.Subscription, error)
	Subscribe(ctx context.Context, o domain.Order, bonus domain.Bonus) (domain.Subscription, error)
	CachedReferrer(ctx context.Context, code string) (int64, error)
	CacheReferrer(ctx context.Context, code string, uid int64) error
}

type subscriptionRepository struct {
	dao   dao.SubscriptionDAO
	cache cache.ReferralCache
}

func NewSubscriptionRepository(d dao.SubscriptionDAO, c cache.ReferralCache) SubscriptionRepository {
	return &subscriptionRepository{dao: d, cache: c}
}

// FindByUid 从来没有订阅过的返回零值
func (r *subscriptionRepository) FindByUid(ctx context.Context, uid int64) (domain.Subscription, error) {
	s, err := r.dao.FindByUid(ctx, uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Subscription{Uid: uid}, nil
	}
	if err != nil {
		return domain.Subscription{}, err
	}
	return r.toDomain(s), nil
}

func (r *subscriptionRepository) Subscribe(ctx context.Context, o domain.Order, bonus domain.Bonus) (domain.Subscription, error) {
	s, err := r.dao.Subscribe(ctx, dao.SubscriptionRecord{
		Key:          o.Key,
		Uid:          o.Uid,
		Days:         o.Days,
		Price:        o.Price,
		ReferralCode: o.ReferralCode,
		ReferrerId:   o.ReferrerId,
	}, bonus.Amount, bonus.MaturesAt)
	if err != nil {
		return domain.Subscription{}, err
	}
	return r.toDomain(s), nil
}

func (r *subscriptionRepository) CachedReferrer(ctx context.Context, code string) (int64, error) {
	return r.cache.Get(ctx, code)
}

func (r *subscriptionRepository) CacheReferrer(ctx context.Context, code string, uid int64) error {
	return r.cache.Set(ctx, code, uid)
}

func (r *subscriptionRepository) toDomain(s dao.Subscription) domain.Subscription {
	return domain.Subscription{
		Uid:     s.Uid,
		StartAt: s.StartAt,
		EndAt:   s.EndAt,
	}
}
