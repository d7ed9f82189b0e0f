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

package ioc

import (
	"context"
	"testing"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTopics(t *testing.T) {
	q := memory.NewMQ()
	err := createTopics(context.Background(), q, []topicConfig{
		{Name: "rating_events", Partitions: 3},
		// 没有配置分区数的时候至少一个分区
		{Name: "follow_events"},
	})
	require.NoError(t, err)

	for _, topic := range []string{"rating_events", "follow_events"} {
		_, err = q.Producer(topic)
		assert.NoError(t, err)
	}
}
