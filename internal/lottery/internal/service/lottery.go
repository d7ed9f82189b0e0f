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
	"math/rand/v2"

	"github.com/ecodeclub/webnovel/internal/lottery/internal/domain"
	"github.com/ecodeclub/webnovel/internal/lottery/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNotEligible = errors.New("不满足参加抽奖的条件")

	ErrAlreadyJoined     = repository.ErrAlreadyJoined
	ErrAlreadyDrawn      = repository.ErrAlreadyDrawn
	ErrTicketNotFound    = repository.ErrTicketNotFound
	ErrAccountNotFound   = repository.ErrAccountNotFound
	ErrAccountBanned     = repository.ErrAccountBanned
	ErrInsufficientCoins = repository.ErrInsufficientCoins
)

// Picker 返回 [1, n] 之间均匀分布的票号
type Picker func(n int64) int64

func RandomPicker(n int64) int64 {
	return rand.Int64N(n) + 1
}

//go:generate mockgen -source=./lottery.go -package=lotterymocks -destination=../../mocks/lottery.mock.go -typed Service
type Service interface {
	// Join 返回票号
	Join(ctx context.Context, uid int64) (int64, error)
	// Draw 本轮没有人参加时 DrawResult.Drawn 为 false
	Draw(ctx context.Context) (domain.DrawResult, error)
	State(ctx context.Context, uid int64) (domain.State, error)
	Histories(ctx context.Context, offset, limit int) ([]domain.History, int64, error)
}

type service struct {
	repo   repository.LotteryRepository
	cfg    domain.Config
	pick   Picker
	logger *elog.Component
}

func NewService(repo repository.LotteryRepository, cfg domain.Config, pick Picker) Service {
	return &service{
		repo:   repo,
		cfg:    cfg,
		pick:   pick,
		logger: elog.DefaultLogger,
	}
}

func (s *service) Join(ctx context.Context, uid int64) (int64, error) {
	// 评分过的每一个作品都要读够章节
	rated, underRead, err := s.repo.CountRatedStories(ctx, uid, s.cfg.MinChaptersPerStory)
	if err != nil {
		return 0, err
	}
	if rated < s.cfg.MinRatedStories || underRead > 0 {
		return 0, fmt.Errorf("%w, 评分作品 %d, 需要 %d, 章节不够的作品 %d",
			ErrNotEligible, rated, s.cfg.MinRatedStories, underRead)
	}
	return s.repo.Join(ctx, uid, s.cfg.EntryFee)
}

func (s *service) Draw(ctx context.Context) (domain.DrawResult, error) {
	res, err := s.repo.Draw(ctx, func(n int64) int64 {
		return s.pick(n)
	})
	if errors.Is(err, ErrTicketNotFound) {
		// 票号不连续, 需要人工介入
		s.logger.Error("抽奖数据不一致", elog.FieldErr(err))
		return domain.DrawResult{}, err
	}
	if err != nil {
		return domain.DrawResult{}, err
	}
	if !res.Drawn {
		s.logger.Info("本轮没有参与者, 跳过开奖")
		return res, nil
	}
	s.logger.Info("开奖完成",
		elog.Int64("round", res.History.Round),
		elog.Int64("winner", res.History.WinnerId),
		elog.Int64("ticket", res.History.WinningTicket),
		elog.Int64("prize", res.History.Prize))
	return res, nil
}

func (s *service) State(ctx context.Context, uid int64) (domain.State, error) {
	st, err := s.repo.State(ctx)
	if err != nil {
		return domain.State{}, err
	}
	st.MyTicket, err = s.repo.FindTicket(ctx, st.Round, uid)
	return st, err
}

func (s *service) Histories(ctx context.Context, offset, limit int) ([]domain.History, int64, error) {
	var (
		eg    errgroup.Group
		hs    []domain.History
		total int64
	)
	eg.Go(func() error {
		var err error
		hs, err = s.repo.Histories(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountHistories(ctx)
		return err
	})
	return hs, total, eg.Wait()
}
