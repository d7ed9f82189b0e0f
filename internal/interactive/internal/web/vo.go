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

type RateReq struct {
	StoryId int64 `json:"storyId"`
	Rating  int   `json:"rating"`
}

type FollowReq struct {
	Uid int64 `json:"uid"`
}

type GetCntReq struct {
	StoryId int64 `json:"storyId"`
}

type GetCntResp struct {
	Rating float64 `json:"rating"`
	Votes  int64   `json:"votes"`
	Views  int64   `json:"views"`
	// 0 表示还没有评分
	MyRating int `json:"myRating"`
}
