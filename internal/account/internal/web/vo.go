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

import "github.com/ecodeclub/webnovel/internal/account/internal/domain"

type Profile struct {
	Uid            int64    `json:"uid"`
	Name           string   `json:"name"`
	Coins          int64    `json:"coins"`
	Level          int64    `json:"level"`
	IsAdFree       bool     `json:"isAdFree"`
	Badges         []string `json:"badges"`
	FollowersCount int64    `json:"followersCount"`
	FollowingCount int64    `json:"followingCount"`
	ChaptersRead   int64    `json:"chaptersRead"`
	ReferralCode   string   `json:"referralCode"`
	// 金额统一用字符串, 保留两位小数
	SaldoDisponivel string `json:"saldoDisponivel"`
	SaldoPendente   string `json:"saldoPendente"`
}

func newProfile(a domain.Account) Profile {
	badges := a.Badges
	if badges == nil {
		badges = []string{}
	}
	return Profile{
		Uid:             a.Uid,
		Name:            a.Name,
		Coins:           a.Coins,
		Level:           a.Level,
		IsAdFree:        a.IsAdFree,
		Badges:          badges,
		FollowersCount:  a.FollowersCount,
		FollowingCount:  a.FollowingCount,
		ChaptersRead:    a.ChaptersRead,
		ReferralCode:    a.ReferralCode,
		SaldoDisponivel: a.Wallet.Available.StringFixed(2),
		SaldoPendente:   a.Wallet.Pending.StringFixed(2),
	}
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type Notification struct {
	Id      int64  `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Read    bool   `json:"read"`
	Ctime   int64  `json:"ctime"`
}

type NotificationList struct {
	Total         int64          `json:"total"`
	Notifications []Notification `json:"notifications"`
}

type MarkReadReq struct {
	Ids []int64 `json:"ids"`
}
