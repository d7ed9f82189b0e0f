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

package subscription

import (
	"strconv"
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/webnovel/internal/account"
	"github.com/ecodeclub/webnovel/internal/pkg/ledger"
	"github.com/ecodeclub/webnovel/internal/pkg/mqx"
	"github.com/ecodeclub/webnovel/internal/pkg/sequencenumber"
	"github.com/ecodeclub/webnovel/internal/pkg/txn"
	"github.com/ecodeclub/webnovel/internal/subscription/internal/domain"
	"github.com/ecodeclub/webnovel/internal/subscription/internal/event"
	"github.com/ecodeclub/webnovel/internal/subscription/internal/repository"
	"github.com/ecodeclub/webnovel/internal/subscription/internal/repository/cache"
	"github.com/ecodeclub/webnovel/internal/subscription/internal/repository/dao"
	"github.com/ecodeclub/webnovel/internal/subscription/internal/service"
	"github.com/ecodeclub/webnovel/internal/subscription/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/shopspring/decimal"
)

func InitModule(db *egorm.Component, q mq.MQ, ec ecache.Cache, accountSvc account.Service) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		cache.NewReferralECache,
		repository.NewSubscriptionRepository,
		initProducer,
		sequencenumber.NewGenerator,
		InitConfig,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.SubscriptionDAO {
	once.Do(func() {
		if err := ledger.InitTables(db); err != nil {
			panic(err)
		}
		if err := dao.InitTables(db); err != nil {
			panic(err)
		}
	})
	return dao.NewSubscriptionGORMDAO(db, txn.NewRunner(db))
}

func initProducer(q mq.MQ) mqx.Producer[event.SubscriptionEvent] {
	p, err := mqx.NewGeneralProducer[event.SubscriptionEvent](q, event.SubscriptionEventTopic,
		mqx.WithKeyFunc(func(evt event.SubscriptionEvent) string {
			return strconv.FormatInt(evt.Uid, 10)
		}))
	if err != nil {
		panic(err)
	}
	return p
}

// InitConfig 价格在配置文件里面用字符串表示, 例如 "9.90"
func InitConfig() domain.Config {
	cfg := domain.DefaultConfig()
	type Config struct {
		Days            int64  `yaml:"days"`
		Price           string `yaml:"price"`
		DiscountedPrice string `yaml:"discountedPrice"`
		ReferralBonus   string `yaml:"referralBonus"`
	}
	if econf.Get("subscription") != nil {
		var c Config
		err := econf.UnmarshalKey("subscription", &c)
		if err != nil {
			panic(err)
		}
		if c.Days > 0 {
			cfg.Days = c.Days
		}
		cfg.Price = parseDecimal(c.Price, cfg.Price)
		cfg.DiscountedPrice = parseDecimal(c.DiscountedPrice, cfg.DiscountedPrice)
		cfg.ReferralBonus = parseDecimal(c.ReferralBonus, cfg.ReferralBonus)
	}
	if days := econf.GetInt64("wallet.maturationDays"); days > 0 {
		cfg.MaturationDays = days
	}
	return cfg
}

func parseDecimal(val string, def decimal.Decimal) decimal.Decimal {
	if val == "" {
		return def
	}
	return decimal.RequireFromString(val)
}
