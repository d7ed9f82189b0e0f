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

	"github.com/ecodeclub/webnovel/internal/account/internal/domain"
	"github.com/ecodeclub/webnovel/internal/account/internal/repository"
	"github.com/ecodeclub/webnovel/internal/pkg/ledger"
	"github.com/ecodeclub/webnovel/internal/pkg/sequencenumber"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrAccountNotFound      = errors.New("账户不存在")
	ErrReferralCodeNotFound = errors.New("推荐码不存在")
)

// 推荐码冲突时最多重新生成的次数
const maxReferralCodeAttempts = 3

//go:generate mockgen -source=./account.go -package=accountmocks -destination=../../mocks/account.mock.go -typed Service
type Service interface {
	// Register 处理注册事件, 重复注册直接返回
	Register(ctx context.Context, uid int64, name string) error
	Profile(ctx context.Context, uid int64) (domain.Account, error)
	FindUIDByReferralCode(ctx context.Context, code string) (int64, error)
	Notifications(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, int64, error)
	MarkNotificationsRead(ctx context.Context, uid int64, ids []int64) (int64, error)
}

type service struct {
	repo   repository.AccountRepository
	sn     *sequencenumber.Generator
	logger *elog.Component
}

func NewService(repo repository.AccountRepository, sn *sequencenumber.Generator) Service {
	return &service{
		repo:   repo,
		sn:     sn,
		logger: elog.DefaultLogger,
	}
}

func (s *service) Register(ctx context.Context, uid int64, name string) error {
	for i := 0; i < maxReferralCodeAttempts; i++ {
		_, err := s.repo.Create(ctx, domain.Account{
			Uid:          uid,
			Name:         name,
			Role:         ledger.RoleUser,
			Badges:       []string{},
			ReferralCode: s.sn.ReferralCode(uid),
		})
		switch {
		case err == nil:
			return nil
		case errors.Is(err, repository.ErrDuplicatedAccount):
			s.logger.Warn("重复的注册事件", elog.Int64("uid", uid))
			return nil
		case errors.Is(err, repository.ErrDuplicatedReferralCode):
			continue
		default:
			return err
		}
	}
	return fmt.Errorf("生成推荐码失败 uid: %d", uid)
}

func (s *service) Profile(ctx context.Context, uid int64) (domain.Account, error) {
	a, err := s.repo.FindByUid(ctx, uid)
	if errors.Is(err, ledger.ErrRecordNotFound) {
		return domain.Account{}, fmt.Errorf("%w, uid %d", ErrAccountNotFound, uid)
	}
	return a, err
}

func (s *service) FindUIDByReferralCode(ctx context.Context, code string) (int64, error) {
	a, err := s.repo.FindByReferralCode(ctx, code)
	if errors.Is(err, ledger.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w, code %s", ErrReferralCodeNotFound, code)
	}
	if err != nil {
		return 0, err
	}
	return a.Uid, nil
}

func (s *service) Notifications(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, int64, error) {
	var (
		eg    errgroup.Group
		ns    []domain.Notification
		total int64
	)
	eg.Go(func() error {
		var err error
		ns, err = s.repo.FindNotifications(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountNotifications(ctx, uid)
		return err
	})
	return ns, total, eg.Wait()
}

func (s *service) MarkNotificationsRead(ctx context.Context, uid int64, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return s.repo.MarkNotificationsRead(ctx, uid, ids)
}
