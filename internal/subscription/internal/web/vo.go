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

type SubscribeReq struct {
	ReferralCode string `json:"referralCode"`
}

type SubscribeResp struct {
	Key string `json:"key"`
	// 实付价格, 保留两位小数
	Price      string `json:"price"`
	Discounted bool   `json:"discounted"`
	EndAt      int64  `json:"endAt"`
}

type Subscription struct {
	StartAt int64 `json:"startAt"`
	EndAt   int64 `json:"endAt"`
	Active  bool  `json:"active"`
}
