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

package lottery

import (
	"sync"
	"time"

	"github.com/ecodeclub/webnovel/internal/lottery/internal/domain"
	"github.com/ecodeclub/webnovel/internal/lottery/internal/job"
	"github.com/ecodeclub/webnovel/internal/lottery/internal/repository"
	"github.com/ecodeclub/webnovel/internal/lottery/internal/repository/dao"
	"github.com/ecodeclub/webnovel/internal/lottery/internal/service"
	"github.com/ecodeclub/webnovel/internal/lottery/internal/web"
	"github.com/ecodeclub/webnovel/internal/pkg/ledger"
	"github.com/ecodeclub/webnovel/internal/pkg/txn"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewLotteryRepository,
		InitConfig,
		initPicker,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		initDrawJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.LotteryDAO {
	once.Do(func() {
		if err := ledger.InitTables(db); err != nil {
			panic(err)
		}
		if err := dao.InitTables(db); err != nil {
			panic(err)
		}
	})
	return dao.NewLotteryGORMDAO(db, txn.NewRunner(db))
}

func InitConfig() domain.Config {
	cfg := domain.DefaultConfig()
	if econf.Get("lottery") == nil {
		return cfg
	}
	err := econf.UnmarshalKey("lottery", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func initPicker() service.Picker {
	return service.RandomPicker
}

// initDrawJob 一次运行内最多重试 3 次
func initDrawJob(svc service.Service) *job.DrawJob {
	return job.NewDrawJob(svc, time.Second, time.Second*10, 3)
}
