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

import (
	"time"

	"github.com/shopspring/decimal"
)

type Config struct {
	// 每月前 FirstDays 天可以提现
	FirstDays int
	// 每月最后 LastDays 天可以提现
	LastDays int
	Minimum  decimal.Decimal
}

func DefaultConfig() Config {
	return Config{
		FirstDays: 5,
		LastDays:  2,
		Minimum:   decimal.RequireFromString("10.00"),
	}
}

// InWindow 判断 now 是否在当月的提现窗口内
func (c Config) InWindow(now time.Time) bool {
	day := now.Day()
	if day <= c.FirstDays {
		return true
	}
	// 下个月第 0 天就是本月最后一天
	lastDay := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	return day > lastDay-c.LastDays
}

type Wallet struct {
	Uid       int64
	Available decimal.Decimal
	Pending   decimal.Decimal
}

type Withdrawal struct {
	Id     int64
	Uid    int64
	Amount decimal.Decimal
	Ctime  int64
}
