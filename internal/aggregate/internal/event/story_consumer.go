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

package event

import (
	"context"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/webnovel/internal/aggregate/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// StoryEventConsumer 作者发布作品之后尝试发放先驱作者徽章
type StoryEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewStoryEventConsumer(svc service.Service, q mq.MQ) (*StoryEventConsumer, error) {
	consumer, err := q.Consumer(storyEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &StoryEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *StoryEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费作品事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *StoryEventConsumer) Consume(ctx context.Context) error {
	evt, err := consume[StoryEvent](ctx, c.consumer)
	if err != nil {
		return err
	}
	if evt.Action != StoryActionCreated {
		return nil
	}
	_, err = c.svc.GrantFounderBadge(ctx, evt.AutorId)
	if err != nil {
		return fmt.Errorf("发放先驱作者徽章失败 uid: %d: %w", evt.AutorId, err)
	}
	return nil
}

func (c *StoryEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
