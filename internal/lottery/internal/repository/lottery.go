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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/webnovel/internal/lottery/internal/domain"
	"github.com/ecodeclub/webnovel/internal/lottery/internal/repository/dao"
)

var (
	ErrAlreadyJoined     = dao.ErrAlreadyJoined
	ErrAlreadyDrawn      = dao.ErrAlreadyDrawn
	ErrTicketNotFound    = dao.ErrTicketNotFound
	ErrAccountNotFound   = dao.ErrAccountNotFound
	ErrAccountBanned     = dao.ErrAccountBanned
	ErrInsufficientCoins = dao.ErrInsufficientCoins
)

type LotteryRepository interface {
	State(ctx context.Context) (domain.State, error)
	FindTicket(ctx context.Context, round, uid int64) (int64, error)
	CountRatedStories(ctx context.Context, uid, minChapters int64) (rated int64, underRead int64, err error)
	Join(ctx context.Context, uid, fee int64) (int64, error)
	Draw(ctx context.Context, pick func(n int64) int64) (domain.DrawResult, error)
	Histories(ctx context.Context, offset, limit int) ([]domain.History, error)
	CountHistories(ctx context.Context) (int64, error)
}

type lotteryRepository struct {
	dao dao.LotteryDAO
}

func NewLotteryRepository(d dao.LotteryDAO) LotteryRepository {
	return &lotteryRepository{dao: d}
}

func (r *lotteryRepository) State(ctx context.Context) (domain.State, error) {
	st, err := r.dao.FindState(ctx)
	if err != nil {
		return domain.State{}, err
	}
	return domain.State{
		Round:        st.CurrentRound,
		Pool:         st.Pool,
		Participants: st.ParticipantsCount,
	}, nil
}

func (r *lotteryRepository) FindTicket(ctx context.Context, round, uid int64) (int64, error) {
	return r.dao.FindTicket(ctx, round, uid)
}

func (r *lotteryRepository) CountRatedStories(ctx context.Context, uid, minChapters int64) (int64, int64, error) {
	return r.dao.CountRatedStories(ctx, uid, minChapters)
}

func (r *lotteryRepository) Join(ctx context.Context, uid, fee int64) (int64, error) {
	p, err := r.dao.Join(ctx, uid, fee)
	return p.TicketNumber, err
}

func (r *lotteryRepository) Draw(ctx context.Context, pick func(n int64) int64) (domain.DrawResult, error) {
	h, drawn, err := r.dao.Draw(ctx, pick)
	if err != nil || !drawn {
		return domain.DrawResult{}, err
	}
	return domain.DrawResult{Drawn: true, History: r.toDomain(h)}, nil
}

func (r *lotteryRepository) Histories(ctx context.Context, offset, limit int) ([]domain.History, error) {
	hs, err := r.dao.FindHistories(ctx, offset, limit)
	return slice.Map(hs, func(idx int, src dao.LotteryHistory) domain.History {
		return r.toDomain(src)
	}), err
}

func (r *lotteryRepository) CountHistories(ctx context.Context) (int64, error) {
	return r.dao.CountHistories(ctx)
}

func (r *lotteryRepository) toDomain(h dao.LotteryHistory) domain.History {
	return domain.History{
		Round:         h.Round,
		WinnerId:      h.WinnerId,
		WinnerName:    h.WinnerName,
		Prize:         h.Prize,
		Pool:          h.Pool,
		Participants:  h.Participants,
		WinningTicket: h.WinningTicket,
		DrawnAt:       h.DrawnAt,
	}
}
