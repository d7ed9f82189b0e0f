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

package domain

type Config struct {
	// 每升一级消耗的金币
	LevelCost int64 `yaml:"levelCost"`
	// 达到该等级后免广告
	AdFreeLevel int64 `yaml:"adFreeLevel"`
	// 打赏前至少要读过的章节数
	MinChaptersRead int64 `yaml:"minChaptersRead"`
	// 首次阅读章节奖励的金币, 0 表示关闭
	ReadingReward int64 `yaml:"readingReward"`
}

func DefaultConfig() Config {
	return Config{
		LevelCost:       100,
		AdFreeLevel:     100,
		MinChaptersRead: 15,
	}
}

type Vote struct {
	Uid     int64
	StoryId int64
	Amount  int64
}

type LevelUp struct {
	Uid    int64
	Levels int64
}

type Reading struct {
	Uid       int64
	StoryId   int64
	ChapterId int64
}
