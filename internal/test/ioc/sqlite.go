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

package testioc

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/ecodeclub/webnovel/internal/pkg/ledger"
	"github.com/ego-component/egorm"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitSQLiteDB 每个测试一个独立的库文件, 不依赖 MySQL 就能跑事务相关的测试.
// 只开一个连接, 并发事务会在连接上排队, 行为等价于串行化隔离级别
func InitSQLiteDB(t *testing.T, models ...any) *egorm.Component {
	t.Helper()
	return initSQLiteDB(t, "", 1, models...)
}

// InitSQLiteWALDB 多个连接共享一个 WAL 模式的库文件, 事务之间可以真正交错.
// 读快照过期的事务在写的时候会拿到 SQLITE_BUSY, 配合 IsSQLiteBusy 当作并发冲突重试
func InitSQLiteWALDB(t *testing.T, conns int, models ...any) *egorm.Component {
	t.Helper()
	return initSQLiteDB(t, "&_journal_mode=WAL", conns, models...)
}

// IsSQLiteBusy 库被别的连接锁住, 或者读快照已经过期
func IsSQLiteBusy(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.Code == sqlite3.ErrBusy || se.Code == sqlite3.ErrLocked
	}
	return false
}

func initSQLiteDB(t *testing.T, params string, conns int, models ...any) *egorm.Component {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=off%s",
		filepath.Join(t.TempDir(), "webnovel.db"), params)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(conns)
	sqlDB.SetMaxIdleConns(conns)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	require.NoError(t, ledger.InitTables(db))
	if len(models) > 0 {
		require.NoError(t, db.AutoMigrate(models...))
	}
	return db
}
