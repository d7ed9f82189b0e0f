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

package ledger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SQLite 的索引名在整个库里唯一, 建表要能在同一个库里重复执行
func TestInitTables(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "ledger.db")), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	require.NoError(t, InitTables(db))
	require.NoError(t, InitTables(db))

	indexes := []struct {
		model any
		name  string
	}{
		{model: &Rating{}, name: "idx_avaliacoes_uid"},
		{model: &Notification{}, name: "idx_notificacoes_uid"},
		{model: &WalletWithdrawal{}, name: "idx_withdrawals_uid"},
		{model: &Follower{}, name: "idx_followed"},
		{model: &ChapterView{}, name: "uniq_uid_chapter"},
	}
	for _, idx := range indexes {
		assert.True(t, db.Migrator().HasIndex(idx.model, idx.name), idx.name)
	}
}
