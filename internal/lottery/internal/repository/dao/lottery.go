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

package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/webnovel/internal/pkg/ledger"
	"github.com/ecodeclub/webnovel/internal/pkg/txn"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrAlreadyJoined     = errors.New("本轮已经参加过抽奖")
	ErrAlreadyDrawn      = errors.New("本轮已经开过奖")
	ErrTicketNotFound    = errors.New("找不到中奖票号对应的参与者")
	ErrAccountNotFound   = errors.New("账户不存在")
	ErrAccountBanned     = errors.New("账户已被封禁")
	ErrInsufficientCoins = errors.New("金币不足")
)

type Account = ledger.Account

type LotteryDAO interface {
	FindState(ctx context.Context) (LotteryState, error)
	FindTicket(ctx context.Context, round, uid int64) (int64, error)
	// CountRatedStories 评分过的作品数, 以及其中读过的章节少于 minChapters 的作品数
	CountRatedStories(ctx context.Context, uid, minChapters int64) (rated int64, underRead int64, err error)
	Join(ctx context.Context, uid, fee int64) (LotteryParticipant, error)
	// Draw pick 返回 [1, n] 之间的票号. 本轮没有参与者的时候返回 false
	Draw(ctx context.Context, pick func(n int64) int64) (LotteryHistory, bool, error)
	FindHistories(ctx context.Context, offset, limit int) ([]LotteryHistory, error)
	CountHistories(ctx context.Context) (int64, error)
}

type LotteryGORMDAO struct {
	db     *egorm.Component
	runner *txn.Runner
}

func NewLotteryGORMDAO(db *egorm.Component, runner *txn.Runner) LotteryDAO {
	return &LotteryGORMDAO{db: db, runner: runner}
}

func (d *LotteryGORMDAO) FindState(ctx context.Context) (LotteryState, error) {
	var st LotteryState
	err := d.runner.Do(ctx, func(tx *gorm.DB) error {
		var err error
		st, err = d.findState(tx)
		return err
	})
	return st, err
}

func (d *LotteryGORMDAO) FindTicket(ctx context.Context, round, uid int64) (int64, error) {
	var p LotteryParticipant
	err := d.db.WithContext(ctx).Where("round = ? AND uid = ?", round, uid).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	return p.TicketNumber, err
}

func (d *LotteryGORMDAO) CountRatedStories(ctx context.Context, uid, minChapters int64) (int64, int64, error) {
	var res struct {
		Rated     int64
		UnderRead int64
	}
	err := d.db.WithContext(ctx).Model(&ledger.Rating{}).
		Select("COUNT(*) AS rated, COALESCE(SUM(CASE WHEN (SELECT COUNT(*) FROM visualizacoes_capitulos v "+
			"WHERE v.uid = avaliacoes.uid AND v.obra_id = avaliacoes.obra_id) < ? THEN 1 ELSE 0 END), 0) AS under_read",
			minChapters).
		Where("uid = ?", uid).
		Scan(&res).Error
	return res.Rated, res.UnderRead, err
}

func (d *LotteryGORMDAO) Join(ctx context.Context, uid, fee int64) (LotteryParticipant, error) {
	var res LotteryParticipant
	err := d.runner.Do(ctx, func(tx *gorm.DB) error {
		st, err := d.findState(tx)
		if err != nil {
			return err
		}
		var cnt int64
		err = tx.Model(&LotteryParticipant{}).
			Where("round = ? AND uid = ?", st.CurrentRound, uid).
			Count(&cnt).Error
		if err != nil {
			return err
		}
		if cnt > 0 {
			return fmt.Errorf("%w, round %d uid %d", ErrAlreadyJoined, st.CurrentRound, uid)
		}
		acc, err := d.findAccount(tx, uid)
		if err != nil {
			return err
		}
		if acc.Banned {
			return ErrAccountBanned
		}
		if acc.Coins < fee {
			return fmt.Errorf("%w, 余额 %d, 需要 %d", ErrInsufficientCoins, acc.Coins, fee)
		}
		now := time.Now().UnixMilli()
		ticket := st.ParticipantsCount + 1
		err = txn.CompareAndSwap(tx, &Account{}, acc.Id, acc.Version, map[string]any{
			"coins": acc.Coins - fee,
			"utime": now,
		})
		if err != nil {
			return err
		}
		err = txn.CompareAndSwap(tx, &LotteryState{}, st.Id, st.Version, map[string]any{
			"pool":               st.Pool + fee,
			"participants_count": ticket,
			"utime":              now,
		})
		if err != nil {
			return err
		}
		p := LotteryParticipant{
			Round:        st.CurrentRound,
			Uid:          uid,
			TicketNumber: ticket,
			UserName:     acc.Name,
			JoinedAt:     now,
		}
		err = tx.Create(&p).Error
		if ledger.IsUniqueIndexError(err) {
			return fmt.Errorf("%w: %w", txn.ErrConflict, err)
		}
		if err != nil {
			return err
		}
		res = p
		return nil
	})
	return res, err
}

func (d *LotteryGORMDAO) Draw(ctx context.Context, pick func(n int64) int64) (LotteryHistory, bool, error) {
	var (
		res   LotteryHistory
		drawn bool
	)
	err := d.runner.Do(ctx, func(tx *gorm.DB) error {
		drawn = false
		st, err := d.findState(tx)
		if err != nil {
			return err
		}
		if st.ParticipantsCount == 0 {
			return nil
		}
		ticket := pick(st.ParticipantsCount)
		var winner LotteryParticipant
		err = tx.Where("round = ? AND ticket_number = ?", st.CurrentRound, ticket).First(&winner).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w, round %d ticket %d participants %d",
				ErrTicketNotFound, st.CurrentRound, ticket, st.ParticipantsCount)
		}
		if err != nil {
			return err
		}
		acc, err := d.findAccount(tx, winner.Uid)
		if err != nil {
			return err
		}
		now := time.Now().UnixMilli()
		// 奖池的一半, 向下取整
		prize := st.Pool / 2
		err = txn.CompareAndSwap(tx, &Account{}, acc.Id, acc.Version, map[string]any{
			"coins": acc.Coins + prize,
			"utime": now,
		})
		if err != nil {
			return err
		}
		err = tx.Create(&ledger.Notification{
			Uid:     winner.Uid,
			Type:    ledger.NotificationTypeLottery,
			Title:   "抽奖中奖",
			Content: fmt.Sprintf("恭喜你在第 %d 期抽奖中获得 %d 金币", st.CurrentRound, prize),
			Ctime:   now,
		}).Error
		if err != nil {
			return err
		}
		h := LotteryHistory{
			Round:         st.CurrentRound,
			WinnerId:      winner.Uid,
			WinnerName:    winner.UserName,
			Prize:         prize,
			Pool:          st.Pool,
			Participants:  st.ParticipantsCount,
			WinningTicket: ticket,
			DrawnAt:       now,
		}
		err = tx.Create(&h).Error
		if ledger.IsUniqueIndexError(err) {
			return fmt.Errorf("%w, round %d", ErrAlreadyDrawn, st.CurrentRound)
		}
		if err != nil {
			return err
		}
		err = txn.CompareAndSwap(tx, &LotteryState{}, st.Id, st.Version, map[string]any{
			"current_round":      st.CurrentRound + 1,
			"pool":               0,
			"participants_count": 0,
			"utime":              now,
		})
		if err != nil {
			return err
		}
		res, drawn = h, true
		return nil
	})
	return res, drawn, err
}

func (d *LotteryGORMDAO) FindHistories(ctx context.Context, offset, limit int) ([]LotteryHistory, error) {
	var res []LotteryHistory
	err := d.db.WithContext(ctx).Order("round DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *LotteryGORMDAO) CountHistories(ctx context.Context) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&LotteryHistory{}).Count(&cnt).Error
	return cnt, err
}

// findState 状态行不存在的时候创建第一轮
func (d *LotteryGORMDAO) findState(tx *gorm.DB) (LotteryState, error) {
	var st LotteryState
	err := tx.Where("id = ?", stateId).First(&st).Error
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return st, err
	}
	now := time.Now().UnixMilli()
	st = LotteryState{
		Id:           stateId,
		CurrentRound: 1,
		Version:      1,
		Ctime:        now,
		Utime:        now,
	}
	err = tx.Create(&st).Error
	if ledger.IsUniqueIndexError(err) {
		return LotteryState{}, fmt.Errorf("%w: %w", txn.ErrConflict, err)
	}
	return st, err
}

func (d *LotteryGORMDAO) findAccount(tx *gorm.DB, uid int64) (Account, error) {
	var acc Account
	err := tx.Where("uid = ?", uid).First(&acc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Account{}, fmt.Errorf("%w, uid %d", ErrAccountNotFound, uid)
	}
	return acc, err
}
