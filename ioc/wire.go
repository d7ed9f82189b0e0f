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

package ioc

import (
	"github.com/ecodeclub/webnovel/internal/account"
	"github.com/ecodeclub/webnovel/internal/aggregate"
	"github.com/ecodeclub/webnovel/internal/economy"
	"github.com/ecodeclub/webnovel/internal/interactive"
	"github.com/ecodeclub/webnovel/internal/lottery"
	"github.com/ecodeclub/webnovel/internal/subscription"
	"github.com/ecodeclub/webnovel/internal/wallet"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		account.InitModule,
		wire.FieldsOf(new(*account.Module), "Svc", "Hdl"),
		interactive.InitModule,
		wire.FieldsOf(new(*interactive.Module), "Hdl"),
		economy.InitModule,
		wire.FieldsOf(new(*economy.Module), "Hdl"),
		subscription.InitModule,
		wire.FieldsOf(new(*subscription.Module), "Hdl"),
		wallet.InitModule,
		wire.FieldsOf(new(*wallet.Module), "Hdl"),
		lottery.InitModule,
		wire.FieldsOf(new(*lottery.Module), "Hdl", "AdminHdl", "DrawJob"),
		aggregate.InitModule,
		InitSession,
		initGinxServer,
		InitAdminServer,
		initCronJobs)
	return new(App), nil
}
