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
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
)

const groupID = "aggregate"

// consume 取一条消息并解析成 T
func consume[T any](ctx context.Context, consumer mq.Consumer) (T, error) {
	var evt T
	msg, err := consumer.Consume(ctx)
	if err != nil {
		return evt, fmt.Errorf("获取消息失败: %w", err)
	}
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return evt, fmt.Errorf("解析消息失败: %w", err)
	}
	return evt, nil
}
