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
	EntryFee int64 `yaml:"entryFee"`
	// 参与抽奖至少要评分过的作品数
	MinRatedStories int64 `yaml:"minRatedStories"`
	// 每个评分过的作品至少要读过的章节数
	MinChaptersPerStory int64 `yaml:"minChaptersPerStory"`
}

func DefaultConfig() Config {
	return Config{
		EntryFee:            10,
		MinRatedStories:     5,
		MinChaptersPerStory: 15,
	}
}

type State struct {
	Round        int64
	Pool         int64
	Participants int64
	// 当前用户本轮的票号, 0 表示没有参加
	MyTicket int64
}

type History struct {
	Round         int64
	WinnerId      int64
	WinnerName    string
	Prize         int64
	Pool          int64
	Participants  int64
	WinningTicket int64
	DrawnAt       int64
}

// DrawResult Drawn 为 false 表示本轮没有人参加, 什么都没做
type DrawResult struct {
	Drawn   bool
	History History
}
