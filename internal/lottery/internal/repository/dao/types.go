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

// 状态表只有一行
const stateId = 1

type LotteryState struct {
	Id                int64 `gorm:"primaryKey;autoIncrement:false"`
	CurrentRound      int64 `gorm:"not null;default:1;comment:当前轮次"`
	Pool              int64 `gorm:"not null;default:0;comment:奖池金币"`
	ParticipantsCount int64 `gorm:"not null;default:0;comment:本轮参与人数,等于最大票号"`
	Version           int64 `gorm:"not null;default:1"`
	Ctime             int64
	Utime             int64
}

func (LotteryState) TableName() string {
	return "lottery_states"
}

type LotteryParticipant struct {
	Id           int64  `gorm:"primaryKey;autoIncrement"`
	Round        int64  `gorm:"not null;uniqueIndex:uniq_round_uid;uniqueIndex:uniq_round_ticket"`
	Uid          int64  `gorm:"not null;uniqueIndex:uniq_round_uid"`
	TicketNumber int64  `gorm:"not null;uniqueIndex:uniq_round_ticket;comment:票号,从1开始连续"`
	UserName     string `gorm:"type:varchar(256);not null;default:''"`
	JoinedAt     int64  `gorm:"not null"`
}

func (LotteryParticipant) TableName() string {
	return "lottery_participants"
}

// LotteryHistory 每轮只能写一次, 同时也是这一轮已经开过奖的标记
type LotteryHistory struct {
	Id            int64  `gorm:"primaryKey;autoIncrement"`
	Round         int64  `gorm:"not null;uniqueIndex:uniq_round"`
	WinnerId      int64  `gorm:"not null"`
	WinnerName    string `gorm:"type:varchar(256);not null;default:''"`
	Prize         int64  `gorm:"not null"`
	Pool          int64  `gorm:"not null"`
	Participants  int64  `gorm:"not null"`
	WinningTicket int64  `gorm:"not null"`
	DrawnAt       int64  `gorm:"not null"`
}

func (LotteryHistory) TableName() string {
	return "lottery_histories"
}
