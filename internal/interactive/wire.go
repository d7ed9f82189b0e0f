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

package interactive

import (
	"strconv"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/webnovel/internal/interactive/internal/events"
	"github.com/ecodeclub/webnovel/internal/interactive/internal/repository"
	"github.com/ecodeclub/webnovel/internal/interactive/internal/repository/dao"
	"github.com/ecodeclub/webnovel/internal/interactive/internal/service"
	"github.com/ecodeclub/webnovel/internal/interactive/internal/web"
	"github.com/ecodeclub/webnovel/internal/pkg/ledger"
	"github.com/ecodeclub/webnovel/internal/pkg/mqx"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var HandlerSet = wire.NewSet(
	InitTablesOnce,
	repository.NewInteractiveRepository,
	initRatingProducer,
	initFollowProducer,
	service.NewService,
	web.NewHandler)

func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(
		HandlerSet,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.InteractiveDAO {
	once.Do(func() {
		if err := ledger.InitTables(db); err != nil {
			panic(err)
		}
	})
	return dao.NewInteractiveDAO(db)
}

func initRatingProducer(q mq.MQ) mqx.Producer[events.RatingEvent] {
	p, err := mqx.NewGeneralProducer[events.RatingEvent](q, events.RatingEventTopic,
		// 同一个作品的评分事件按顺序消费
		mqx.WithKeyFunc(func(evt events.RatingEvent) string {
			return strconv.FormatInt(evt.StoryId, 10)
		}))
	if err != nil {
		panic(err)
	}
	return p
}

func initFollowProducer(q mq.MQ) mqx.Producer[events.FollowEvent] {
	p, err := mqx.NewGeneralProducer[events.FollowEvent](q, events.FollowEventTopic,
		mqx.WithKeyFunc(func(evt events.FollowEvent) string {
			return strconv.FormatInt(evt.FollowedId, 10)
		}))
	if err != nil {
		panic(err)
	}
	return p
}
