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
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrConflict         = errors.New("记录已被并发修改")
	ErrTooManyConflicts = errors.New("并发修改冲突, 超过最大重试次数")
)

// Runner 乐观事务. 事务体可能被执行多次,
// 所以事务体里面只能读写数据库, 不能发消息, 也不能依赖外部状态
type Runner struct {
	db *egorm.Component

	initialInterval time.Duration
	maxInterval     time.Duration
	maxRetries      int32
	// 额外需要整体重试的错误, 例如别的数据库方言的锁冲突
	retryable func(err error) bool
}

func NewRunner(db *egorm.Component) *Runner {
	return &Runner{
		db:              db,
		initialInterval: 10 * time.Millisecond,
		maxInterval:     200 * time.Millisecond,
		maxRetries:      8,
	}
}

func (r *Runner) WithRetry(initialInterval, maxInterval time.Duration, maxRetries int32) *Runner {
	r.initialInterval = initialInterval
	r.maxInterval = maxInterval
	r.maxRetries = maxRetries
	return r
}

// Do 在事务中执行 fn, 遇到并发冲突时整体重试
func (r *Runner) WithRetryable(fn func(err error) bool) *Runner {
	r.retryable = fn
	return r
}

func (r *Runner) Do(ctx context.Context, fn func(tx *gorm.DB) error) error {
	strategy, err := retry.NewExponentialBackoffRetryStrategy(r.initialInterval, r.maxInterval, r.maxRetries)
	if err != nil {
		return err
	}
	for {
		err = r.db.WithContext(ctx).Transaction(fn)
		if err == nil || !r.isRetryable(err) {
			return err
		}
		next, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("%w: %w", ErrTooManyConflicts, err)
		}
		timer := time.NewTimer(next)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (r *Runner) isRetryable(err error) bool {
	if errors.Is(err, ErrConflict) {
		return true
	}
	if r.retryable != nil && r.retryable(err) {
		return true
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const (
			lockWaitTimeout uint16 = 1205
			deadlock        uint16 = 1213
		)
		return me.Number == deadlock || me.Number == lockWaitTimeout
	}
	return false
}

// CompareAndSwap 按版本号更新一行, 版本号不一致时返回 ErrConflict
func CompareAndSwap(tx *gorm.DB, model any, id, version int64, values map[string]any) error {
	values["version"] = version + 1
	res := tx.Model(model).
		Where("id = ? AND version = ?", id, version).
		Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %T id=%d version=%d", ErrConflict, model, id, version)
	}
	return nil
}
