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

package job

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/webnovel/internal/lottery/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*DrawJob)(nil)

// DrawJob 每月开奖一次, 临时错误在一次运行内重试
type DrawJob struct {
	svc             service.Service
	initialInterval time.Duration
	maxInterval     time.Duration
	maxRetries      int32
	logger          *elog.Component
}

func NewDrawJob(svc service.Service, initialInterval, maxInterval time.Duration, maxRetries int32) *DrawJob {
	return &DrawJob{
		svc:             svc,
		initialInterval: initialInterval,
		maxInterval:     maxInterval,
		maxRetries:      maxRetries,
		logger:          elog.DefaultLogger,
	}
}

func (j *DrawJob) Name() string {
	return "LotteryDrawJob"
}

func (j *DrawJob) Run(ctx context.Context) error {
	strategy, err := retry.NewExponentialBackoffRetryStrategy(j.initialInterval, j.maxInterval, j.maxRetries)
	if err != nil {
		return err
	}
	for {
		_, err = j.svc.Draw(ctx)
		if err == nil {
			return nil
		}
		// 别的实例已经开过奖了
		if errors.Is(err, service.ErrAlreadyDrawn) {
			j.logger.Info("本轮已经开过奖, 跳过", elog.FieldErr(err))
			return nil
		}
		// 数据不一致重试也没用
		if errors.Is(err, service.ErrTicketNotFound) {
			return err
		}
		next, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("开奖失败, 超过最大重试次数: %w", err)
		}
		j.logger.Warn("开奖失败, 准备重试", elog.FieldErr(err), elog.Any("interval", next.String()))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(next):
		}
	}
}
