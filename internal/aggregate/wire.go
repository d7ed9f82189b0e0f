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

package aggregate

import (
	"context"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/webnovel/internal/aggregate/internal/event"
	"github.com/ecodeclub/webnovel/internal/aggregate/internal/repository"
	"github.com/ecodeclub/webnovel/internal/aggregate/internal/repository/dao"
	"github.com/ecodeclub/webnovel/internal/aggregate/internal/service"
	"github.com/ecodeclub/webnovel/internal/pkg/ledger"
	"github.com/ecodeclub/webnovel/internal/pkg/txn"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(
		InitService,
		initRatingEventConsumer,
		initStoryEventConsumer,
		initFollowEventConsumer,
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
		d := dao.NewAggregateGORMDAO(db, txn.NewRunner(db))
		svc = service.NewService(repository.NewAggregateRepository(d))
	})
	return svc
}

func initRatingEventConsumer(svc service.Service, q mq.MQ) *event.RatingEventConsumer {
	c, err := event.NewRatingEventConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}

func initStoryEventConsumer(svc service.Service, q mq.MQ) *event.StoryEventConsumer {
	c, err := event.NewStoryEventConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}

func initFollowEventConsumer(svc service.Service, q mq.MQ) *event.FollowEventConsumer {
	c, err := event.NewFollowEventConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}
