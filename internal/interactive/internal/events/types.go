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

package events

const (
	RatingEventTopic = "rating_events"
	FollowEventTopic = "follow_events"
)

const (
	FollowActionFollow   = "follow"
	FollowActionUnfollow = "unfollow"
)

type RatingEvent struct {
	StoryId int64 `json:"storyId"`
	Uid     int64 `json:"uid"`
	Rating  int   `json:"rating"`
}

type FollowEvent struct {
	FollowerId int64 `json:"followerId"`
	FollowedId int64 `json:"followedId"`
	// follow 或者 unfollow
	Action string `json:"action"`
}
