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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/webnovel/internal/pkg/ledger"
	"github.com/ecodeclub/webnovel/internal/pkg/txn"
	"github.com/ego-component/egorm"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound = errors.New("账户不存在")
	ErrBelowMinimum    = errors.New("可提现余额低于最低提现金额")
)

type Account = ledger.Account
type WalletEarning = ledger.WalletEarning
type WalletWithdrawal = ledger.WalletWithdrawal

type WalletDAO interface {
	FindAccount(ctx context.Context, uid int64) (Account, error)
	// Refresh 把 now 之前到期的待结算收入转入可提现余额, 返回转入的金额
	Refresh(ctx context.Context, uid int64, now int64) (decimal.Decimal, error)
	// Withdraw 把全部可提现余额转成一笔提现申请
	Withdraw(ctx context.Context, uid int64, minimum decimal.Decimal, now int64) (WalletWithdrawal, error)
}

type WalletGORMDAO struct {
	db     *egorm.Component
	runner *txn.Runner
}

func NewWalletGORMDAO(db *egorm.Component, runner *txn.Runner) WalletDAO {
	return &WalletGORMDAO{db: db, runner: runner}
}

func (d *WalletGORMDAO) FindAccount(ctx context.Context, uid int64) (Account, error) {
	return d.findAccount(d.db.WithContext(ctx), uid)
}

func (d *WalletGORMDAO) Refresh(ctx context.Context, uid int64, now int64) (decimal.Decimal, error) {
	var moved decimal.Decimal
	err := d.runner.Do(ctx, func(tx *gorm.DB) error {
		moved = decimal.Zero
		var earnings []WalletEarning
		err := tx.Where("uid = ? AND status = ? AND matures_at <= ?", uid, ledger.EarningStatusPending, now).
			Find(&earnings).Error
		if err != nil || len(earnings) == 0 {
			return err
		}
		acc, err := d.findAccount(tx, uid)
		if err != nil {
			return err
		}
		ids := slice.Map(earnings, func(idx int, src WalletEarning) int64 {
			return src.Id
		})
		res := tx.Model(&WalletEarning{}).
			Where("id IN ? AND status = ?", ids, ledger.EarningStatusPending).
			Updates(map[string]any{
				"status": ledger.EarningStatusReleased,
				"utime":  now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(ids)) {
			// 另一个 Refresh 已经结算了其中一部分
			return fmt.Errorf("%w: 结算收入 %d 条, 实际更新 %d 条", txn.ErrConflict, len(ids), res.RowsAffected)
		}
		total := decimal.Zero
		for _, e := range earnings {
			total = total.Add(e.Amount)
		}
		pending := acc.SaldoPendente.Sub(total)
		if pending.IsNegative() {
			pending = decimal.Zero
		}
		err = txn.CompareAndSwap(tx, &Account{}, acc.Id, acc.Version, map[string]any{
			"saldo_pendente":   pending,
			"saldo_disponivel": acc.SaldoDisponivel.Add(total),
			"utime":            now,
		})
		if err != nil {
			return err
		}
		moved = total
		return nil
	})
	return moved, err
}

func (d *WalletGORMDAO) Withdraw(ctx context.Context, uid int64, minimum decimal.Decimal, now int64) (WalletWithdrawal, error) {
	var res WalletWithdrawal
	err := d.runner.Do(ctx, func(tx *gorm.DB) error {
		acc, err := d.findAccount(tx, uid)
		if err != nil {
			return err
		}
		if acc.SaldoDisponivel.LessThan(minimum) {
			return fmt.Errorf("%w, 余额 %s, 最低 %s", ErrBelowMinimum,
				acc.SaldoDisponivel.StringFixed(2), minimum.StringFixed(2))
		}
		err = txn.CompareAndSwap(tx, &Account{}, acc.Id, acc.Version, map[string]any{
			"saldo_disponivel": decimal.Zero,
			"utime":            now,
		})
		if err != nil {
			return err
		}
		w := WalletWithdrawal{
			Uid:    uid,
			Amount: acc.SaldoDisponivel,
			Status: ledger.WithdrawalStatusRequested,
			Ctime:  now,
			Utime:  now,
		}
		if err = tx.Create(&w).Error; err != nil {
			return err
		}
		err = tx.Create(&ledger.Notification{
			Uid:     uid,
			Type:    ledger.NotificationTypeWallet,
			Title:   "提现申请已提交",
			Content: fmt.Sprintf("提现金额 %s, 请等待处理", w.Amount.StringFixed(2)),
			Ctime:   now,
		}).Error
		if err != nil {
			return err
		}
		res = w
		return nil
	})
	return res, err
}

func (d *WalletGORMDAO) findAccount(tx *gorm.DB, uid int64) (Account, error) {
	var acc Account
	err := tx.Where("uid = ?", uid).First(&acc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Account{}, fmt.Errorf("%w, uid %d", ErrAccountNotFound, uid)
	}
	return acc, err
}
