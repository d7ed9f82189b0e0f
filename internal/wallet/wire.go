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

package wallet

import (
	"sync"
	"time"

	"github.com/ecodeclub/webnovel/internal/pkg/ledger"
	"github.com/ecodeclub/webnovel/internal/pkg/txn"
	"github.com/ecodeclub/webnovel/internal/wallet/internal/domain"
	"github.com/ecodeclub/webnovel/internal/wallet/internal/repository"
	"github.com/ecodeclub/webnovel/internal/wallet/internal/repository/dao"
	"github.com/ecodeclub/webnovel/internal/wallet/internal/service"
	"github.com/ecodeclub/webnovel/internal/wallet/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/shopspring/decimal"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewWalletRepository,
		InitConfig,
		initClock,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.WalletDAO {
	once.Do(func() {
		if err := ledger.InitTables(db); err != nil {
			panic(err)
		}
	})
	return dao.NewWalletGORMDAO(db, txn.NewRunner(db))
}

func InitConfig() domain.Config {
	cfg := domain.DefaultConfig()
	type Config struct {
		FirstDays int    `yaml:"firstDays"`
		LastDays  int    `yaml:"lastDays"`
		Minimum   string `yaml:"minimum"`
	}
	if econf.Get("wallet") == nil {
		return cfg
	}
	var c Config
	err := econf.UnmarshalKey("wallet", &c)
	if err != nil {
		panic(err)
	}
	if c.FirstDays > 0 {
		cfg.FirstDays = c.FirstDays
	}
	if c.LastDays > 0 {
		cfg.LastDays = c.LastDays
	}
	if c.Minimum != "" {
		cfg.Minimum = decimal.RequireFromString(c.Minimum)
	}
	return cfg
}

func initClock() service.Clock {
	return time.Now
}
