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

// FollowEventConsumer 维护关注数和粉丝数
type FollowEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewFollowEventConsumer(svc service.Service, q mq.MQ) (*FollowEventConsumer, error) {
	consumer, err := q.Consumer(followEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &FollowEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *FollowEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费关注事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *FollowEventConsumer) Consume(ctx context.Context) error {
	evt, err := consume[FollowEvent](ctx, c.consumer)
	if err != nil {
		return err
	}
	if evt.Action != FollowActionFollow && evt.Action != FollowActionUnfollow {
		return fmt.Errorf("未知的关注事件 %#v", evt)
	}
	err = c.svc.SyncFollowCounts(ctx, evt.FollowerId, evt.FollowedId)
	if err != nil {
		return fmt.Errorf("更新关注计数失败 %#v: %w", evt, err)
	}
	return nil
}

func (c *FollowEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
