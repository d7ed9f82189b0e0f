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

import "github.com/shopspring/decimal"

type Account struct {
	Uid            int64
	Name           string
	Coins          int64
	Level          int64
	IsAdFree       bool
	Badges         []string
	Banned         bool
	Role           string
	FollowersCount int64
	FollowingCount int64
	ChaptersRead   int64
	Wallet         Wallet
	ReferralCode   string
	Ctime          int64
}

type Wallet struct {
	// 可提现余额
	Available decimal.Decimal
	// 待结算余额
	Pending decimal.Decimal
}

type Notification struct {
	Id      int64
	Type    string
	Title   string
	Content string
	Read    bool
	Ctime   int64
}
