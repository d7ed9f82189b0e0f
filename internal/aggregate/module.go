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

package aggregate

import (
	"github.com/ecodeclub/webnovel/internal/aggregate/internal/event"
	"github.com/ecodeclub/webnovel/internal/aggregate/internal/service"
)

// Module 没有对外的接口, 只消费评分、作品和关注事件
type Module struct {
	Svc Service
	rc  *event.RatingEventConsumer
	sc  *event.StoryEventConsumer
	fc  *event.FollowEventConsumer
}

type Service = service.Service

type (
	RatingEvent = event.RatingEvent
	StoryEvent  = event.StoryEvent
	FollowEvent = event.FollowEvent
)

const FounderBadgeLimit = service.FounderBadgeLimit
