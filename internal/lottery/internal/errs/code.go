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
	SystemError       = ErrorCode{Code: 525001, Msg: "系统错误"}
	NotEligible       = ErrorCode{Code: 525002, Msg: "不满足参加抽奖的条件"}
	AlreadyJoined     = ErrorCode{Code: 525003, Msg: "本轮已经参加过抽奖"}
	InsufficientCoins = ErrorCode{Code: 525004, Msg: "金币不足"}
	AccountNotFound   = ErrorCode{Code: 525005, Msg: "账户不存在"}
	AccountBanned     = ErrorCode{Code: 525006, Msg: "账户已被封禁"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
