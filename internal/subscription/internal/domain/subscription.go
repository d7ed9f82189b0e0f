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

type Config struct {
	// 每次订阅增加的天数
	Days            int64
	Price           decimal.Decimal
	DiscountedPrice decimal.Decimal
	// 推荐人获得的奖励, 先进入待结算余额
	ReferralBonus decimal.Decimal
	// 奖励多少天后可以提现
	MaturationDays int64
}

func DefaultConfig() Config {
	return Config{
		Days:            30,
		Price:           decimal.RequireFromString("9.90"),
		DiscountedPrice: decimal.RequireFromString("7.90"),
		ReferralBonus:   decimal.RequireFromString("2.00"),
		MaturationDays:  30,
	}
}

type Subscription struct {
	Uid     int64
	StartAt int64
	EndAt   int64
}

func (s Subscription) Active(now int64) bool {
	return s.EndAt >= now
}

type Order struct {
	Key          string
	Uid          int64
	Days         int64
	Price        decimal.Decimal
	ReferralCode string
	ReferrerId   int64
}

// Bonus 推荐人奖励, 到期之后才能提现
type Bonus struct {
	Amount    decimal.Decimal
	MaturesAt int64
}

type Receipt struct {
	Key        string
	Price      decimal.Decimal
	Discounted bool
	EndAt      int64
}
