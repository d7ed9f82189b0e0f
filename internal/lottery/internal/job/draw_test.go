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
	"testing"
	"time"

	"github.com/ecodeclub/webnovel/internal/lottery/internal/domain"
	"github.com/ecodeclub/webnovel/internal/lottery/internal/service"
	lotterymocks "github.com/ecodeclub/webnovel/internal/lottery/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDrawJob_Run(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) service.Service
		wantErr error
	}{
		{
			name: "一次成功",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := lotterymocks.NewMockService(ctrl)
				svc.EXPECT().Draw(gomock.Any()).Return(domain.DrawResult{Drawn: true}, nil)
				return svc
			},
		},
		{
			name: "临时错误重试之后成功",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := lotterymocks.NewMockService(ctrl)
				gomock.InOrder(
					svc.EXPECT().Draw(gomock.Any()).Return(domain.DrawResult{}, errors.New("mock db error")).Times(2),
					svc.EXPECT().Draw(gomock.Any()).Return(domain.DrawResult{}, nil),
				)
				return svc
			},
		},
		{
			name: "数据不一致不重试",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := lotterymocks.NewMockService(ctrl)
				svc.EXPECT().Draw(gomock.Any()).Return(domain.DrawResult{}, service.ErrTicketNotFound).Times(1)
				return svc
			},
			wantErr: service.ErrTicketNotFound,
		},
		{
			name: "已经开过奖不重试",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := lotterymocks.NewMockService(ctrl)
				svc.EXPECT().Draw(gomock.Any()).Return(domain.DrawResult{}, service.ErrAlreadyDrawn).Times(1)
				return svc
			},
		},
		{
			name: "超过最大重试次数",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := lotterymocks.NewMockService(ctrl)
				svc.EXPECT().Draw(gomock.Any()).Return(domain.DrawResult{}, context.DeadlineExceeded).Times(4)
				return svc
			},
			wantErr: context.DeadlineExceeded,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			job := NewDrawJob(tc.mock(ctrl), time.Millisecond, time.Millisecond*5, 3)
			assert.Equal(t, "LotteryDrawJob", job.Name())
			err := job.Run(context.Background())
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
