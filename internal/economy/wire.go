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

//go:build wireinject

package economy

import (
	"sync"

	"github.com/ecodeclub/webnovel/internal/economy/internal/domain"
	"github.com/ecodeclub/webnovel/internal/economy/internal/repository"
	"github.com/ecodeclub/webnovel/internal/economy/internal/repository/dao"
	"github.com/ecodeclub/webnovel/internal/economy/internal/service"
	"github.com/ecodeclub/webnovel/internal/economy/internal/web"
	"github.com/ecodeclub/webnovel/internal/pkg/ledger"
	"github.com/ecodeclub/webnovel/internal/pkg/txn"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

var HandlerSet = wire.NewSet(
	InitTablesOnce,
	InitConfig,
	repository.NewEconomyRepository,
	service.NewService,
	web.NewHandler)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		HandlerSet,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.EconomyDAO {
	once.Do(func() {
		if err := ledger.InitTables(db); err != nil {
			panic(err)
		}
	})
	return dao.NewEconomyGORMDAO(db, txn.NewRunner(db))
}

// InitConfig 没有配置 economy 的时候使用默认值
func InitConfig() domain.Config {
	cfg := domain.DefaultConfig()
	if econf.Get("economy") == nil {
		return cfg
	}
	err := econf.UnmarshalKey("economy", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}
