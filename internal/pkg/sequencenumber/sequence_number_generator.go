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

package sequencenumber

import (
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

const (
	orderKeyLength     = 32
	referralCodeLength = 10
)

// Generator 生成订阅流水号和推荐码, 时间和随机串都可以替换, 方便测试
type Generator struct {
	now  func() time.Time
	uuid func() string
}

func NewGeneratorWith(now func() time.Time, uuid func() string) *Generator {
	return &Generator{now: now, uuid: uuid}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(time.Now, shortuuid.New)
}

// OrderKey 毫秒时间戳 + 用户后四位 + shortuuid, 截断到 32 位.
// 用作订阅流水和订阅事件的去重 key
func (g *Generator) OrderKey(uid int64) string {
	key := fmt.Sprintf("%d%04d%s", g.now().UnixMilli(), uid%10000, g.uuid())
	return key[:min(len(key), orderKeyLength)]
}

// ReferralCode R + 用户后四位 + shortuuid 前五位.
// 不保证全局唯一, 冲突由唯一索引兜底, 调用方重新生成即可
func (g *Generator) ReferralCode(uid int64) string {
	code := fmt.Sprintf("R%04d%s", uid%10000, g.uuid())
	return code[:min(len(code), referralCodeLength)]
}
