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

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/webnovel/internal/aggregate/internal/event"
	"github.com/ecodeclub/webnovel/internal/aggregate/internal/repository"
	"github.com/ecodeclub/webnovel/internal/aggregate/internal/repository/dao"
	"github.com/ecodeclub/webnovel/internal/aggregate/internal/service"
	"github.com/ecodeclub/webnovel/internal/pkg/ledger"
	"github.com/ecodeclub/webnovel/internal/pkg/txn"
	testioc "github.com/ecodeclub/webnovel/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestAggregateModule(t *testing.T) {
	suite.Run(t, new(AggregateTestSuite))
}

type AggregateTestSuite struct {
	suite.Suite
	db  *egorm.Component
	svc service.Service
}

func (s *AggregateTestSuite) SetupTest() {
	s.db = testioc.InitSQLiteDB(s.T())
	runner := txn.NewRunner(s.db).WithRetry(time.Millisecond, 5*time.Millisecond, 100)
	s.svc = service.NewService(repository.NewAggregateRepository(dao.NewAggregateGORMDAO(s.db, runner)))
}

func (s *AggregateTestSuite) createAccount(uid int64, badges ...string) {
	if badges == nil {
		badges = []string{}
	}
	require.NoError(s.T(), s.db.Create(&ledger.Account{
		Uid:     uid,
		Name:    fmt.Sprintf("user-%d", uid),
		Badges:  sqlx.JsonColumn[[]string]{Val: badges, Valid: true},
		Version: 1,
	}).Error)
}

func (s *AggregateTestSuite) findAccount(uid int64) ledger.Account {
	var acc ledger.Account
	require.NoError(s.T(), s.db.Where("uid = ?", uid).First(&acc).Error)
	return acc
}

func (s *AggregateTestSuite) TestRecomputeRating() {
	t := s.T()
	ctx := context.Background()
	story := ledger.Story{AutorId: 1, Title: "A", Rating: 4.5, Votes: 9, Version: 1}
	require.NoError(t, s.db.Create(&story).Error)

	// 没有评分的时候归零
	require.NoError(t, s.svc.RecomputeRating(ctx, story.Id))
	var got ledger.Story
	require.NoError(t, s.db.First(&got, story.Id).Error)
	assert.Equal(t, 0.0, got.Rating)
	assert.Equal(t, int64(0), got.Votes)

	for i, r := range []int{5, 4, 3, 4} {
		require.NoError(t, s.db.Create(&ledger.Rating{ObraId: story.Id, Uid: int64(100 + i), Rating: r}).Error)
	}
	require.NoError(t, s.svc.RecomputeRating(ctx, story.Id))
	require.NoError(t, s.db.First(&got, story.Id).Error)
	assert.InDelta(t, 4.0, got.Rating, 0.0001)
	assert.Equal(t, int64(4), got.Votes)

	err := s.svc.RecomputeRating(ctx, story.Id+100)
	assert.ErrorIs(t, err, service.ErrStoryNotFound)
}

func (s *AggregateTestSuite) TestGrantFounderBadge() {
	t := s.T()
	testCases := []struct {
		name        string
		before      func(t *testing.T)
		uid         int64
		wantGranted bool
		wantErr     error
		wantCounter int64
	}{
		{
			name:        "第一位作者",
			before:      func(t *testing.T) { s.createAccount(1) },
			uid:         1,
			wantGranted: true,
			wantCounter: 1,
		},
		{
			name: "已经有徽章",
			before: func(t *testing.T) {
				s.createAccount(2, ledger.BadgePioneer)
				s.setCounter(t, 10)
			},
			uid:         2,
			wantCounter: 10,
		},
		{
			name: "最后一个名额",
			before: func(t *testing.T) {
				s.createAccount(3, ledger.BadgeVerified)
				s.setCounter(t, service.FounderBadgeLimit-1)
			},
			uid:         3,
			wantGranted: true,
			wantCounter: service.FounderBadgeLimit,
		},
		{
			name: "名额已满",
			before: func(t *testing.T) {
				s.createAccount(4)
				s.setCounter(t, service.FounderBadgeLimit)
			},
			uid:         4,
			wantCounter: service.FounderBadgeLimit,
		},
		{
			name:    "账户不存在",
			before:  func(t *testing.T) {},
			uid:     5,
			wantErr: service.ErrAccountNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s.SetupTest()
			tc.before(t)
			granted, err := s.svc.GrantFounderBadge(context.Background(), tc.uid)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, tc.wantGranted, granted)
			assert.Equal(t, tc.wantCounter, s.counter(t))
			acc := s.findAccount(tc.uid)
			assert.True(t, acc.HasBadge(ledger.BadgePioneer) || !tc.wantGranted)
			var notifications int64
			require.NoError(t, s.db.Model(&ledger.Notification{}).
				Where("uid = ? AND type = ?", tc.uid, ledger.NotificationTypeBadge).
				Count(&notifications).Error)
			if tc.wantGranted {
				assert.Equal(t, int64(1), notifications)
			} else {
				assert.Equal(t, int64(0), notifications)
			}
		})
	}
}

func (s *AggregateTestSuite) TestGrantFounderBadge_Concurrent() {
	t := s.T()
	// 只剩 3 个名额, 10 位作者同时发布
	const authors = 10
	s.setCounter(t, service.FounderBadgeLimit-3)
	for i := int64(1); i <= authors; i++ {
		s.createAccount(i)
	}
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		granted int
	)
	for i := int64(1); i <= authors; i++ {
		wg.Add(1)
		go func(uid int64) {
			defer wg.Done()
			ok, err := s.svc.GrantFounderBadge(context.Background(), uid)
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 3, granted)
	assert.Equal(t, int64(service.FounderBadgeLimit), s.counter(t))
}

func (s *AggregateTestSuite) TestSyncFollowCounts() {
	t := s.T()
	ctx := context.Background()
	for i := int64(1); i <= 3; i++ {
		s.createAccount(i)
	}

	s.follow(t, 1, 2)
	require.NoError(t, s.svc.SyncFollowCounts(ctx, 1, 2))
	s.assertFollowCounts(t, 1, 0, 1)
	s.assertFollowCounts(t, 2, 1, 0)

	// 同一个事件消费两次, 计数不变
	require.NoError(t, s.svc.SyncFollowCounts(ctx, 1, 2))
	s.assertFollowCounts(t, 1, 0, 1)
	s.assertFollowCounts(t, 2, 1, 0)

	// 3 关注 2 的事件丢了, 下一次统计的时候补上
	s.follow(t, 3, 2)
	require.NoError(t, s.svc.SyncFollowCounts(ctx, 1, 2))
	s.assertFollowCounts(t, 2, 2, 0)

	s.unfollow(t, 1, 2)
	require.NoError(t, s.svc.SyncFollowCounts(ctx, 1, 2))
	require.NoError(t, s.svc.SyncFollowCounts(ctx, 1, 2))
	s.assertFollowCounts(t, 1, 0, 0)
	s.assertFollowCounts(t, 2, 1, 0)

	// 计数被改坏了也能恢复
	require.NoError(t, s.db.Model(&ledger.Account{}).Where("uid = ?", 1).
		Update("following_count", -5).Error)
	require.NoError(t, s.svc.SyncFollowCounts(ctx, 1, 2))
	s.assertFollowCounts(t, 1, 0, 0)

	err := s.svc.SyncFollowCounts(ctx, 1, 4)
	assert.ErrorIs(t, err, service.ErrAccountNotFound)
	s.assertFollowCounts(t, 1, 0, 0)
}

func (s *AggregateTestSuite) TestConsumers() {
	t := s.T()
	ctx := context.Background()
	q := testioc.InitMQ()
	s.createAccount(1)
	s.createAccount(2)
	story := ledger.Story{AutorId: 1, Title: "A", Version: 1}
	require.NoError(t, s.db.Create(&story).Error)
	require.NoError(t, s.db.Create(&ledger.Rating{ObraId: story.Id, Uid: 2, Rating: 5}).Error)
	s.follow(t, 2, 1)

	rc, err := event.NewRatingEventConsumer(s.svc, q)
	require.NoError(t, err)
	sc, err := event.NewStoryEventConsumer(s.svc, q)
	require.NoError(t, err)
	fc, err := event.NewFollowEventConsumer(s.svc, q)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		topic   string
		evt     any
		consume func(ctx context.Context) error
		wantErr bool
		after   func(t *testing.T)
	}{
		{
			name:    "评分事件",
			topic:   "rating_events",
			evt:     event.RatingEvent{StoryId: story.Id, Uid: 2, Rating: 5},
			consume: rc.Consume,
			after: func(t *testing.T) {
				var got ledger.Story
				require.NoError(t, s.db.First(&got, story.Id).Error)
				assert.Equal(t, 5.0, got.Rating)
				assert.Equal(t, int64(1), got.Votes)
			},
		},
		{
			name:    "作品更新事件不发徽章",
			topic:   "story_events",
			evt:     event.StoryEvent{StoryId: story.Id, AutorId: 1, Action: "updated"},
			consume: sc.Consume,
			after: func(t *testing.T) {
				assert.False(t, s.findAccount(1).HasBadge(ledger.BadgePioneer))
			},
		},
		{
			name:    "作品创建事件",
			topic:   "story_events",
			evt:     event.StoryEvent{StoryId: story.Id, AutorId: 1, Action: event.StoryActionCreated},
			consume: sc.Consume,
			after: func(t *testing.T) {
				assert.True(t, s.findAccount(1).HasBadge(ledger.BadgePioneer))
			},
		},
		{
			name:    "关注事件",
			topic:   "follow_events",
			evt:     event.FollowEvent{FollowerId: 2, FollowedId: 1, Action: event.FollowActionFollow},
			consume: fc.Consume,
			after: func(t *testing.T) {
				assert.Equal(t, int64(1), s.findAccount(1).FollowersCount)
				assert.Equal(t, int64(1), s.findAccount(2).FollowingCount)
			},
		},
		{
			name:    "重复的关注事件",
			topic:   "follow_events",
			evt:     event.FollowEvent{FollowerId: 2, FollowedId: 1, Action: event.FollowActionFollow},
			consume: fc.Consume,
			after: func(t *testing.T) {
				s.assertFollowCounts(t, 1, 1, 0)
				s.assertFollowCounts(t, 2, 0, 1)
			},
		},
		{
			name:    "未知的关注事件",
			topic:   "follow_events",
			evt:     event.FollowEvent{FollowerId: 2, FollowedId: 1, Action: "block"},
			consume: fc.Consume,
			wantErr: true,
			after: func(t *testing.T) {
				assert.Equal(t, int64(1), s.findAccount(1).FollowersCount)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			producer, err := q.Producer(tc.topic)
			require.NoError(t, err)
			data, err := json.Marshal(tc.evt)
			require.NoError(t, err)
			_, err = producer.Produce(ctx, &mq.Message{Value: data})
			require.NoError(t, err)
			cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			err = tc.consume(cctx)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			tc.after(t)
		})
	}
}

func (s *AggregateTestSuite) setCounter(t *testing.T, value int64) {
	now := time.Now().UnixMilli()
	require.NoError(t, s.db.Create(&ledger.GlobalCounter{
		Name:    "founder_authors",
		Value:   value,
		Version: 1,
		Ctime:   now,
		Utime:   now,
	}).Error)
}

func (s *AggregateTestSuite) counter(t *testing.T) int64 {
	var c ledger.GlobalCounter
	require.NoError(t, s.db.Where("name = ?", "founder_authors").First(&c).Error)
	return c.Value
}

func (s *AggregateTestSuite) follow(t *testing.T, followerId, followedId int64) {
	require.NoError(t, s.db.Create(&ledger.Follower{
		FollowerId: followerId,
		FollowedId: followedId,
		Ctime:      time.Now().UnixMilli(),
	}).Error)
}

func (s *AggregateTestSuite) unfollow(t *testing.T, followerId, followedId int64) {
	require.NoError(t, s.db.Where("follower_id = ? AND followed_id = ?", followerId, followedId).
		Delete(&ledger.Follower{}).Error)
}

func (s *AggregateTestSuite) assertFollowCounts(t *testing.T, uid, followers, following int64) {
	acc := s.findAccount(uid)
	assert.Equal(t, followers, acc.FollowersCount)
	assert.Equal(t, following, acc.FollowingCount)
}
