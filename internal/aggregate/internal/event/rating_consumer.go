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

// RatingEventConsumer 评分变化之后重新计算作品的平均分
type RatingEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewRatingEventConsumer(svc service.Service, q mq.MQ) (*RatingEventConsumer, error) {
	consumer, err := q.Consumer(ratingEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &RatingEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *RatingEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费评分事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *RatingEventConsumer) Consume(ctx context.Context) error {
	evt, err := consume[RatingEvent](ctx, c.consumer)
	if err != nil {
		return err
	}
	err = c.svc.RecomputeRating(ctx, evt.StoryId)
	if err != nil {
		return fmt.Errorf("重新计算评分失败 storyId: %d: %w", evt.StoryId, err)
	}
	return nil
}

func (c *RatingEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
