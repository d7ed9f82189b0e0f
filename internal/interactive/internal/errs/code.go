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
	SystemError     = ErrorCode{Code: 521001, Msg: "系统错误"}
	InvalidRating   = ErrorCode{Code: 521002, Msg: "评分必须在 1 到 5 之间"}
	StoryNotFound   = ErrorCode{Code: 521003, Msg: "作品不存在"}
	SelfFollow      = ErrorCode{Code: 521004, Msg: "不能关注自己"}
	AccountNotFound = ErrorCode{Code: 521005, Msg: "用户不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
