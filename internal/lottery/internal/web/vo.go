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

import "github.com/ecodeclub/webnovel/internal/lottery/internal/domain"

type JoinResp struct {
	Ticket int64 `json:"ticket"`
}

type State struct {
	Round        int64 `json:"round"`
	Pool         int64 `json:"pool"`
	Participants int64 `json:"participants"`
	MyTicket     int64 `json:"myTicket"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type History struct {
	Round         int64  `json:"round"`
	WinnerId      int64  `json:"winnerId"`
	WinnerName    string `json:"winnerName"`
	Prize         int64  `json:"prize"`
	Pool          int64  `json:"pool"`
	Participants  int64  `json:"participants"`
	WinningTicket int64  `json:"winningTicket"`
	DrawnAt       int64  `json:"drawnAt"`
}

func newHistory(h domain.History) History {
	return History{
		Round:         h.Round,
		WinnerId:      h.WinnerId,
		WinnerName:    h.WinnerName,
		Prize:         h.Prize,
		Pool:          h.Pool,
		Participants:  h.Participants,
		WinningTicket: h.WinningTicket,
		DrawnAt:       h.DrawnAt,
	}
}

type HistoryList struct {
	Total     int64     `json:"total"`
	Histories []History `json:"histories"`
}

type DrawResp struct {
	Drawn   bool    `json:"drawn"`
	History History `json:"history"`
}
