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

package dao

import "github.com/shopspring/decimal"

// Subscription 每个用户只有一条记录, 续订只修改结束时间
type Subscription struct {
	Id      int64 `gorm:"primaryKey;autoIncrement;comment:订阅表自增ID"`
	Uid     int64 `gorm:"not null;uniqueIndex:unq_uid;comment:用户ID"`
	StartAt int64 `gorm:"not null;comment:订阅开始时间,UTC Unix毫秒数"`
	EndAt   int64 `gorm:"not null;comment:订阅结束时间,UTC Unix毫秒数"`
	Version int64 `gorm:"not null;default:1;comment:版本号"`
	Ctime   int64
	Utime   int64
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// SubscriptionRecord 订阅流水
type SubscriptionRecord struct {
	Id           int64           `gorm:"primaryKey;autoIncrement;comment:订阅流水自增ID"`
	Key          string          `gorm:"type:varchar(256);not null;uniqueIndex:unq_key;comment:去重key"`
	Uid          int64           `gorm:"not null;index:idx_subscription_records_uid;comment:用户ID"`
	Days         int64           `gorm:"not null;comment:订阅天数"`
	Price        decimal.Decimal `gorm:"type:decimal(20,2);not null;comment:实付价格"`
	ReferralCode string          `gorm:"type:varchar(64);not null;default:'';comment:使用的推荐码"`
	ReferrerId   int64           `gorm:"not null;default:0;comment:推荐人ID"`
	Ctime        int64
	Utime        int64
}

func (SubscriptionRecord) TableName() string {
	return "subscription_records"
}

// ReferralUse 每个用户一辈子只能用一次推荐码
type ReferralUse struct {
	Id         int64  `gorm:"primaryKey;autoIncrement"`
	InviteeId  int64  `gorm:"not null;uniqueIndex:unq_invitee_id;comment:被推荐人ID"`
	ReferrerId int64  `gorm:"not null;index:idx_referrer_id;comment:推荐人ID"`
	Code       string `gorm:"type:varchar(64);not null"`
	Ctime      int64
}

func (ReferralUse) TableName() string {
	return "referral_uses"
}
