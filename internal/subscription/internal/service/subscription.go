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
	"strings"
	"time"

	"github.com/ecodeclub/webnovel/internal/account"
	"github.com/ecodeclub/webnovel/internal/pkg/mqx"
	"github.com/ecodeclub/webnovel/internal/pkg/sequencenumber"
	"github.com/ecodeclub/webnovel/internal/subscription/internal/domain"
	"github.com/ecodeclub/webnovel/internal/subscription/internal/event"
	"github.com/ecodeclub/webnovel/internal/subscription/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrInvalidReferralCode = errors.New("推荐码无效")
	ErrOwnReferralCode     = errors.New("不能使用自己的推荐码")

	ErrReferralAlreadyUsed = repository.ErrReferralAlreadyUsed
	ErrDuplicatedRecord    = repository.ErrDuplicatedRecord
	ErrAccountNotFound     = repository.ErrAccountNotFound
)

//go:generate mockgen -source=./subscription.go -package=subscriptionmocks -destination=../../mocks/subscription.mock.go -typed Service
type Service interface {
	// Subscribe referralCode 为空时按原价订阅
	Subscribe(ctx context.Context, uid int64, referralCode string) (domain.Receipt, error)
	Detail(ctx context.Context, uid int64) (domain.Subscription, error)
}

type service struct {
	repo       repository.SubscriptionRepository
	accountSvc account.Service
	producer   mqx.Producer[event.SubscriptionEvent]
	sn         *sequencenumber.Generator
	cfg        domain.Config
	logger     *elog.Component
}

func NewService(repo repository.SubscriptionRepository,
	accountSvc account.Service,
	producer mqx.Producer[event.SubscriptionEvent],
	sn *sequencenumber.Generator,
	cfg domain.Config) Service {
	return &service{
		repo:       repo,
		accountSvc: accountSvc,
		producer:   producer,
		sn:         sn,
		cfg:        cfg,
		logger:     elog.DefaultLogger,
	}
}

func (s *service) Subscribe(ctx context.Context, uid int64, referralCode string) (domain.Receipt, error) {
	key := s.sn.OrderKey(uid)
	order := domain.Order{
		Key:   key,
		Uid:   uid,
		Days:  s.cfg.Days,
		Price: s.cfg.Price,
	}
	code := strings.TrimSpace(referralCode)
	if code != "" {
		referrer, err := s.findReferrer(ctx, code)
		if err != nil {
			return domain.Receipt{}, err
		}
		if referrer == uid {
			return domain.Receipt{}, fmt.Errorf("%w, uid %d", ErrOwnReferralCode, uid)
		}
		order.ReferralCode = code
		order.ReferrerId = referrer
		order.Price = s.cfg.DiscountedPrice
	}
	maturation := time.Hour * 24 * time.Duration(s.cfg.MaturationDays)
	sub, err := s.repo.Subscribe(ctx, order, domain.Bonus{
		Amount:    s.cfg.ReferralBonus,
		MaturesAt: time.Now().Add(maturation).UnixMilli(),
	})
	if err != nil {
		return domain.Receipt{}, err
	}
	err = s.producer.Produce(ctx, event.SubscriptionEvent{
		Key:        order.Key,
		Uid:        uid,
		Days:       order.Days,
		Price:      order.Price.StringFixed(2),
		ReferrerId: order.ReferrerId,
		EndAt:      sub.EndAt,
	})
	if err != nil {
		s.logger.Error("发送订阅事件失败",
			elog.FieldErr(err),
			elog.String("key", order.Key),
			elog.Int64("uid", uid))
	}
	return domain.Receipt{
		Key:        order.Key,
		Price:      order.Price,
		Discounted: order.ReferrerId > 0,
		EndAt:      sub.EndAt,
	}, nil
}

// findReferrer 先查缓存, 缓存出错的时候直接查账户
func (s *service) findReferrer(ctx context.Context, code string) (int64, error) {
	uid, err := s.repo.CachedReferrer(ctx, code)
	if err == nil {
		return uid, nil
	}
	if !errors.Is(err, repository.ErrKeyNotExist) {
		s.logger.Warn("读取推荐码缓存失败", elog.FieldErr(err), elog.String("code", code))
	}
	uid, err = s.accountSvc.FindUIDByReferralCode(ctx, code)
	if errors.Is(err, account.ErrReferralCodeNotFound) {
		return 0, fmt.Errorf("%w, code %s", ErrInvalidReferralCode, code)
	}
	if err != nil {
		return 0, err
	}
	if er := s.repo.CacheReferrer(ctx, code, uid); er != nil {
		s.logger.Warn("回写推荐码缓存失败", elog.FieldErr(er), elog.String("code", code))
	}
	return uid, nil
}

func (s *service) Detail(ctx context.Context, uid int64) (domain.Subscription, error) {
	return s.repo.FindByUid(ctx, uid)
}
