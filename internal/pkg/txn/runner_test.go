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

package txn

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ecodeclub/webnovel/internal/pkg/ledger"
	testioc "github.com/ecodeclub/webnovel/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCompareAndSwap(t *testing.T) {
	db := testioc.InitSQLiteDB(t)
	acc := ledger.Account{Uid: 1, Coins: 100, Version: 1}
	require.NoError(t, db.Create(&acc).Error)

	err := db.Transaction(func(tx *gorm.DB) error {
		return CompareAndSwap(tx, &ledger.Account{}, acc.Id, 1, map[string]any{"coins": 90})
	})
	require.NoError(t, err)

	// 旧版本号再写一次
	err = db.Transaction(func(tx *gorm.DB) error {
		return CompareAndSwap(tx, &ledger.Account{}, acc.Id, 1, map[string]any{"coins": 80})
	})
	assert.ErrorIs(t, err, ErrConflict)

	var got ledger.Account
	require.NoError(t, db.First(&got, acc.Id).Error)
	assert.Equal(t, int64(90), got.Coins)
	assert.Equal(t, int64(2), got.Version)
}

func TestRunner_Do(t *testing.T) {
	testCases := []struct {
		name      string
		fn        func(calls *int) func(tx *gorm.DB) error
		wantErr   error
		wantCalls int
	}{
		{
			name: "一次成功",
			fn: func(calls *int) func(tx *gorm.DB) error {
				return func(tx *gorm.DB) error {
					*calls++
					return nil
				}
			},
			wantCalls: 1,
		},
		{
			name: "冲突后重试成功",
			fn: func(calls *int) func(tx *gorm.DB) error {
				return func(tx *gorm.DB) error {
					*calls++
					if *calls < 3 {
						return ErrConflict
					}
					return nil
				}
			},
			wantCalls: 3,
		},
		{
			name: "业务错误不重试",
			fn: func(calls *int) func(tx *gorm.DB) error {
				return func(tx *gorm.DB) error {
					*calls++
					return errors.New("mock error")
				}
			},
			wantErr:   errors.New("mock error"),
			wantCalls: 1,
		},
		{
			name: "超过最大重试次数",
			fn: func(calls *int) func(tx *gorm.DB) error {
				return func(tx *gorm.DB) error {
					*calls++
					return ErrConflict
				}
			},
			wantErr: ErrTooManyConflicts,
			// 第一次执行 + 3 次重试
			wantCalls: 4,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := testioc.InitSQLiteDB(t)
			r := NewRunner(db).WithRetry(time.Millisecond, 2*time.Millisecond, 3)
			calls := 0
			err := r.Do(context.Background(), tc.fn(&calls))
			assert.Equal(t, tc.wantCalls, calls)
			switch {
			case tc.wantErr == nil:
				assert.NoError(t, err)
			case errors.Is(tc.wantErr, ErrTooManyConflicts):
				assert.ErrorIs(t, err, ErrTooManyConflicts)
				assert.ErrorIs(t, err, ErrConflict)
			default:
				assert.EqualError(t, err, tc.wantErr.Error())
			}
		})
	}
}

func TestRunner_DoCanceled(t *testing.T) {
	db := testioc.InitSQLiteDB(t)
	r := NewRunner(db).WithRetry(time.Second, time.Second, 10)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := r.Do(ctx, func(tx *gorm.DB) error {
		return ErrConflict
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// 并发扣减同一个账户, 最终余额必须等于初始值减去成功的次数
func TestRunner_ConcurrentDeduct(t *testing.T) {
	db := testioc.InitSQLiteDB(t)
	acc := ledger.Account{Uid: 2, Coins: 50, Version: 1}
	require.NoError(t, db.Create(&acc).Error)
	r := NewRunner(db)

	errInsufficient := errors.New("余额不足")
	const workers = 80
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := r.Do(context.Background(), func(tx *gorm.DB) error {
				var a ledger.Account
				if err := tx.First(&a, acc.Id).Error; err != nil {
					return err
				}
				if a.Coins < 1 {
					return errInsufficient
				}
				return CompareAndSwap(tx, &ledger.Account{}, a.Id, a.Version, map[string]any{
					"coins": a.Coins - 1,
				})
			})
			if err == nil {
				mu.Lock()
				success++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, errInsufficient)
		}()
	}
	wg.Wait()
	var got ledger.Account
	require.NoError(t, db.First(&got, acc.Id).Error)
	assert.Equal(t, 50, success)
	assert.Equal(t, int64(0), got.Coins)
}

// 两个事务在不同的连接上交错执行: A 读到余额之后, B 先扣款并提交.
// A 的写入必须失败并整体重试, 重试时看到 B 提交之后的余额
func TestRunner_DoInterleaved(t *testing.T) {
	db := testioc.InitSQLiteWALDB(t, 2)
	acc := ledger.Account{Uid: 3, Coins: 100, Version: 1}
	require.NoError(t, db.Create(&acc).Error)
	var conflicts atomic.Int32
	r := NewRunner(db).WithRetry(time.Millisecond, 5*time.Millisecond, 10).
		WithRetryable(func(err error) bool {
			if testioc.IsSQLiteBusy(err) {
				conflicts.Add(1)
				return true
			}
			return false
		})
	deduct := func(tx *gorm.DB, amount int64) (ledger.Account, error) {
		var a ledger.Account
		if err := tx.First(&a, acc.Id).Error; err != nil {
			return a, err
		}
		return a, CompareAndSwap(tx, &ledger.Account{}, a.Id, a.Version, map[string]any{
			"coins": a.Coins - amount,
		})
	}

	var seen []int64
	err := r.Do(context.Background(), func(tx *gorm.DB) error {
		var a ledger.Account
		if err := tx.First(&a, acc.Id).Error; err != nil {
			return err
		}
		seen = append(seen, a.Coins)
		if len(seen) == 1 {
			// A 持有读快照, B 在另外一个连接上完成扣款
			err := r.Do(context.Background(), func(tx *gorm.DB) error {
				_, err := deduct(tx, 30)
				return err
			})
			require.NoError(t, err)
		}
		return CompareAndSwap(tx, &ledger.Account{}, a.Id, a.Version, map[string]any{
			"coins": a.Coins - 10,
		})
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{100, 70}, seen)
	assert.True(t, conflicts.Load() >= 1)
	var got ledger.Account
	require.NoError(t, db.First(&got, acc.Id).Error)
	assert.Equal(t, int64(60), got.Coins)
	assert.Equal(t, int64(3), got.Version)
}

// 多个连接上的并发扣款, 冲突走重试, 余额不会扣成负数
func TestRunner_ConcurrentDeductWAL(t *testing.T) {
	db := testioc.InitSQLiteWALDB(t, 4)
	acc := ledger.Account{Uid: 4, Coins: 10, Version: 1}
	require.NoError(t, db.Create(&acc).Error)
	r := NewRunner(db).WithRetry(time.Millisecond, 10*time.Millisecond, 500).
		WithRetryable(testioc.IsSQLiteBusy)

	errInsufficient := errors.New("余额不足")
	const workers = 16
	var (
		wg      sync.WaitGroup
		success atomic.Int32
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := r.Do(context.Background(), func(tx *gorm.DB) error {
				var a ledger.Account
				if err := tx.First(&a, acc.Id).Error; err != nil {
					return err
				}
				if a.Coins < 1 {
					return errInsufficient
				}
				return CompareAndSwap(tx, &ledger.Account{}, a.Id, a.Version, map[string]any{
					"coins": a.Coins - 1,
				})
			})
			if err == nil {
				success.Add(1)
				return
			}
			assert.ErrorIs(t, err, errInsufficient)
		}()
	}
	wg.Wait()
	var got ledger.Account
	require.NoError(t, db.First(&got, acc.Id).Error)
	assert.Equal(t, int32(10), success.Load())
	assert.Equal(t, int64(0), got.Coins)
}
