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

const (
	MinRating = 1
	MaxRating = 5
)

type Rating struct {
	StoryId int64
	Uid     int64
	Rating  int
}

type Follow struct {
	FollowerId int64
	FollowedId int64
}

// StoryStat 作品的互动数据, MyRating 为 0 表示还没有评分
type StoryStat struct {
	StoryId  int64
	Rating   float64
	Votes    int64
	Views    int64
	MyRating int
}
