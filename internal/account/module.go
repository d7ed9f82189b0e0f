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

package account

import (
	"github.com/ecodeclub/webnovel/internal/account/internal/domain"
	"github.com/ecodeclub/webnovel/internal/account/internal/event"
	"github.com/ecodeclub/webnovel/internal/account/internal/service"
	"github.com/ecodeclub/webnovel/internal/account/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
	c   *event.RegistrationEventConsumer
}

type Service = service.Service
type Handler = web.Handler
type Account = domain.Account

var (
	ErrAccountNotFound      = service.ErrAccountNotFound
	ErrReferralCodeNotFound = service.ErrReferralCodeNotFound
)
