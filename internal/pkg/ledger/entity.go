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

package ledger

import (
	"database/sql"
	"strings"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/shopspring/decimal"
)

// 账户、作品等共享表由多个模块在同一个事务里读写,
// 所以表结构统一放在这里, 各模块 DAO 直接使用.

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	BadgePioneer  = "pioneer"
	BadgeVerified = "verified"
)

// Account 用户账户, 所有金额相关字段只能在事务中修改
type Account struct {
	Id              int64                     `gorm:"primaryKey;autoIncrement;comment:账户自增ID"`
	Uid             int64                     `gorm:"not null;uniqueIndex:uniq_uid;comment:用户ID"`
	Name            string                    `gorm:"type:varchar(256);not null;default:'';comment:用户昵称"`
	Coins           int64                     `gorm:"not null;default:0;comment:金币余额"`
	Level           int64                     `gorm:"not null;default:0;comment:等级"`
	IsAdFree        bool                      `gorm:"not null;default:false;comment:免广告,等级>=100"`
	Badges          sqlx.JsonColumn[[]string] `gorm:"type:varchar(512);comment:徽章"`
	Banned          bool                      `gorm:"not null;default:false"`
	Role            string                    `gorm:"type:varchar(32);not null;default:'user'"`
	FollowersCount  int64                     `gorm:"not null;default:0;comment:粉丝数"`
	FollowingCount  int64                     `gorm:"not null;default:0;comment:关注数"`
	ChaptersRead    int64                     `gorm:"not null;default:0;comment:已读章节数"`
	SaldoDisponivel decimal.Decimal           `gorm:"type:decimal(20,2);not null;default:0;comment:可提现余额"`
	SaldoPendente   decimal.Decimal           `gorm:"type:decimal(20,2);not null;default:0;comment:待结算余额"`
	ReferralCode    sql.NullString            `gorm:"type:varchar(64);uniqueIndex:uniq_referral_code;comment:推荐码"`
	Version         int64                     `gorm:"not null;default:1;comment:版本号"`
	Ctime           int64
	Utime           int64
}

func (Account) TableName() string {
	return "usuarios"
}

func (a Account) HasBadge(badge string) bool {
	for _, b := range a.Badges.Val {
		if b == badge {
			return true
		}
	}
	return false
}

const (
	StoryStatusPublished uint8 = 1
	StoryStatusDeleted   uint8 = 2
)

// Story 作品. 打赏、浏览、评分都是冗余计数
type Story struct {
	Id           int64                     `gorm:"primaryKey;autoIncrement"`
	AutorId      int64                     `gorm:"not null;index:idx_autor_id;comment:作者ID"`
	Title        string                    `gorm:"type:varchar(512);not null;default:''"`
	MonthlyCoins int64                     `gorm:"not null;default:0;comment:本月打赏"`
	TotalCoins   int64                     `gorm:"not null;default:0;comment:累计打赏"`
	Views        int64                     `gorm:"not null;default:0"`
	Rating       float64                   `gorm:"not null;default:0;comment:平均评分,由评分汇总计算"`
	Votes        int64                     `gorm:"not null;default:0;comment:评分人数"`
	Categorias   sqlx.JsonColumn[[]string] `gorm:"type:varchar(512)"`
	Tags         sqlx.JsonColumn[[]string] `gorm:"type:varchar(512)"`
	Status       uint8                     `gorm:"type:tinyint unsigned;not null;default:1;comment:1=已发布 2=已删除"`
	Version      int64                     `gorm:"not null;default:1"`
	Ctime        int64
	Utime        int64
}

func (Story) TableName() string {
	return "obras"
}

// IsFanfic 分类或者标签里面包含 fanfic 的作品不能接受打赏, 不区分大小写
func (s Story) IsFanfic() bool {
	for _, vals := range [][]string{s.Categorias.Val, s.Tags.Val} {
		for _, v := range vals {
			if strings.Contains(strings.ToLower(v), "fanfic") {
				return true
			}
		}
	}
	return false
}

// Rating 每个用户对每个作品只有一条评分
type Rating struct {
	Id     int64 `gorm:"primaryKey;autoIncrement"`
	ObraId int64 `gorm:"not null;uniqueIndex:uniq_obra_uid;comment:作品ID"`
	Uid    int64 `gorm:"not null;uniqueIndex:uniq_obra_uid;index:idx_avaliacoes_uid"`
	Rating int   `gorm:"not null;comment:1-5"`
	Ctime  int64
	Utime  int64
}

func (Rating) TableName() string {
	return "avaliacoes"
}

// ChapterView 阅读记录, 存在即表示已读
type ChapterView struct {
	Id        int64 `gorm:"primaryKey;autoIncrement"`
	Uid       int64 `gorm:"not null;uniqueIndex:uniq_uid_chapter;index:idx_uid_obra,priority:1"`
	ChapterId int64 `gorm:"not null;uniqueIndex:uniq_uid_chapter"`
	ObraId    int64 `gorm:"not null;index:idx_uid_obra,priority:2"`
	Ctime     int64
}

func (ChapterView) TableName() string {
	return "visualizacoes_capitulos"
}

// Follower 关注关系, follower 关注了 followed
type Follower struct {
	Id         int64 `gorm:"primaryKey;autoIncrement"`
	FollowerId int64 `gorm:"not null;uniqueIndex:uniq_follower_followed"`
	FollowedId int64 `gorm:"not null;uniqueIndex:uniq_follower_followed;index:idx_followed"`
	Ctime      int64
}

func (Follower) TableName() string {
	return "seguidores"
}

const (
	NotificationTypeLottery = "lottery"
	NotificationTypeBadge   = "badge"
	NotificationTypeWallet  = "wallet"
)

type Notification struct {
	Id      int64  `gorm:"primaryKey;autoIncrement"`
	Uid     int64  `gorm:"not null;index:idx_notificacoes_uid"`
	Type    string `gorm:"type:varchar(64);not null"`
	Title   string `gorm:"type:varchar(256);not null"`
	Content string `gorm:"type:varchar(1024);not null"`
	Read    bool   `gorm:"column:is_read;not null;default:false"`
	Ctime   int64
}

func (Notification) TableName() string {
	return "notificacoes"
}

// GlobalCounter 全局计数器, 例如先驱作者徽章的发放数量
type GlobalCounter struct {
	Id      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"type:varchar(128);not null;uniqueIndex:uniq_name"`
	Value   int64  `gorm:"not null;default:0"`
	Version int64  `gorm:"not null;default:1"`
	Ctime   int64
	Utime   int64
}

const (
	EarningStatusPending  uint8 = 1
	EarningStatusReleased uint8 = 2

	EarningBizReferral = "referral"
)

// WalletEarning 待结算收入, 到期后由 Refresh 转入可提现余额
type WalletEarning struct {
	Id        int64           `gorm:"primaryKey;autoIncrement"`
	Uid       int64           `gorm:"not null;index:idx_uid_status_matures,priority:1"`
	Amount    decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	Biz       string          `gorm:"type:varchar(64);not null;comment:收入来源 referral 等"`
	BizId     int64           `gorm:"not null"`
	Status    uint8           `gorm:"type:tinyint unsigned;not null;default:1;index:idx_uid_status_matures,priority:2"`
	MaturesAt int64           `gorm:"not null;index:idx_uid_status_matures,priority:3"`
	Ctime     int64
	Utime     int64
}

const WithdrawalStatusRequested uint8 = 1

type WalletWithdrawal struct {
	Id     int64           `gorm:"primaryKey;autoIncrement"`
	Uid    int64           `gorm:"not null;index:idx_withdrawals_uid"`
	Amount decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	Status uint8           `gorm:"type:tinyint unsigned;not null;default:1"`
	Ctime  int64
	Utime  int64
}
