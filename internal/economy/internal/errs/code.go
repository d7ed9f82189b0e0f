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

package errs

var (
	SystemError         = ErrorCode{Code: 522001, Msg: "系统错误"}
	InvalidAmount       = ErrorCode{Code: 522002, Msg: "金额必须大于 0"}
	NotRated            = ErrorCode{Code: 522003, Msg: "投票前必须先评分"}
	InsufficientReading = ErrorCode{Code: 522004, Msg: "阅读章节数不足"}
	StoryNotFound       = ErrorCode{Code: 522005, Msg: "作品不存在"}
	AccountNotFound     = ErrorCode{Code: 522006, Msg: "账户不存在"}
	SelfVote            = ErrorCode{Code: 522007, Msg: "不能给自己的作品投票"}
	FanficStory         = ErrorCode{Code: 522008, Msg: "同人作品不能接受投票"}
	InsufficientCoins   = ErrorCode{Code: 522009, Msg: "金币不足"}
	InvalidLevels       = ErrorCode{Code: 522010, Msg: "升级数不合法"}
	AccountBanned       = ErrorCode{Code: 522011, Msg: "账户已被封禁"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
