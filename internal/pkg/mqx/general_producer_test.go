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

package mqx

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	Uid    int64  `json:"uid"`
	Action string `json:"action"`
}

func TestGeneralProducer_Produce(t *testing.T) {
	testCases := []struct {
		name    string
		opts    []Option[testEvent]
		evt     testEvent
		wantKey string
	}{
		{
			name: "没有key",
			evt:  testEvent{Uid: 123, Action: "follow"},
		},
		{
			name: "按照uid分区",
			opts: []Option[testEvent]{
				WithKeyFunc(func(evt testEvent) string {
					return strconv.FormatInt(evt.Uid, 10)
				}),
			},
			evt:     testEvent{Uid: 456, Action: "unfollow"},
			wantKey: "456",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := memory.NewMQ()
			const topic = "general_producer_test"
			require.NoError(t, q.CreateTopic(context.Background(), topic, 1))
			consumer, err := q.Consumer(topic, "test")
			require.NoError(t, err)

			p, err := NewGeneralProducer[testEvent](q, topic, tc.opts...)
			require.NoError(t, err)
			err = p.Produce(context.Background(), tc.evt)
			require.NoError(t, err)

			// 内存实现每秒拉取一次消息
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			msg, err := consumer.Consume(ctx)
			require.NoError(t, err)
			var evt testEvent
			require.NoError(t, json.Unmarshal(msg.Value, &evt))
			assert.Equal(t, tc.evt, evt)
			assert.Equal(t, tc.wantKey, string(msg.Key))
		})
	}
}
