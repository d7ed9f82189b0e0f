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

package account

import (
	"context"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/webnovel/internal/account/internal/event"
	"github.com/ecodeclub/webnovel/internal/account/internal/repository"
	"github.com/ecodeclub/webnovel/internal/account/internal/repository/dao"
	"github.com/ecodeclub/webnovel/internal/account/internal/service"
	"github.com/ecodeclub/webnovel/internal/account/internal/web"
	"github.com/ecodeclub/webnovel/internal/pkg/ledger"
	"github.com/ecodeclub/webnovel/internal/pkg/sequencenumber"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(
		InitService,
		web.NewHandler,
		initRegistrationEventConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(db *egorm.Component) Service {
	once.Do(func() {
		if err := ledger.InitTables(db); err != nil {
			panic(err)
		}
		d := dao.NewAccountGORMDAO(db)
		r := repository.NewAccountRepository(d)
		svc = service.NewService(r, sequencenumber.NewGenerator())
	})
	return svc
}

func initRegistrationEventConsumer(svc service.Service, q mq.MQ) *event.RegistrationEventConsumer {
	c, err := event.NewRegistrationEventConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}
