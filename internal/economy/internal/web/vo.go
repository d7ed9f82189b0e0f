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

package web

type VoteReq struct {
	StoryId int64 `json:"storyId"`
	Amount  int64 `json:"amount"`
}

type LevelReq struct {
	// 不传或者传 0 都按升一级处理
	Levels int64 `json:"levels"`
}

type LevelResp struct {
	NewLevel int64 `json:"newLevel"`
}

type ReadingReq struct {
	StoryId   int64 `json:"storyId"`
	ChapterId int64 `json:"chapterId"`
}

type ReadingResp struct {
	Success bool `json:"success"`
	// 首次阅读该章节
	FirstView bool `json:"firstView"`
}
