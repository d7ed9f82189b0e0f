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
	"errors"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/webnovel/internal/interactive/internal/domain"
	"github.com/ecodeclub/webnovel/internal/interactive/internal/events"
	"github.com/ecodeclub/webnovel/internal/interactive/internal/repository"
	"github.com/ecodeclub/webnovel/internal/interactive/internal/repository/dao"
	"github.com/ecodeclub/webnovel/internal/interactive/internal/service"
	"github.com/ecodeclub/webnovel/internal/interactive/internal/web"
	"github.com/ecodeclub/webnovel/internal/pkg/ledger"
	mqxmocks "github.com/ecodeclub/webnovel/internal/pkg/mqx/mocks"
	"github.com/ecodeclub/webnovel/internal/test"
	testioc "github.com/ecodeclub/webnovel/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const uid = 123

func TestInteractiveModule(t *testing.T) {
	suite.Run(t, new(InteractiveTestSuite))
}

type InteractiveTestSuite struct {
	suite.Suite
	db             *egorm.Component
	ctrl           *gomock.Controller
	ratingProducer *mqxmocks.MockProducer[events.RatingEvent]
	followProducer *mqxmocks.MockProducer[events.FollowEvent]
	svc            service.InteractiveService
	server         *gin.Engine
}

func (s *InteractiveTestSuite) SetupTest() {
	s.db = testioc.InitSQLiteDB(s.T())
	s.ctrl = gomock.NewController(s.T())
	s.ratingProducer = mqxmocks.NewMockProducer[events.RatingEvent](s.ctrl)
	s.followProducer = mqxmocks.NewMockProducer[events.FollowEvent](s.ctrl)
	repo := repository.NewInteractiveRepository(dao.NewInteractiveDAO(s.db))
	s.svc = service.NewService(repo, s.ratingProducer, s.followProducer)

	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.Use(test.LoginAs(uid, nil))
	web.NewHandler(s.svc).PrivateRoutes(server)
	s.server = server

	require.NoError(s.T(), s.db.Create(&ledger.Story{Id: 1, AutorId: 9, Status: ledger.StoryStatusPublished}).Error)
	require.NoError(s.T(), s.db.Create(&ledger.Story{Id: 2, AutorId: 9, Status: ledger.StoryStatusDeleted}).Error)
	require.NoError(s.T(), s.db.Create(&ledger.Account{Uid: uid}).Error)
	require.NoError(s.T(), s.db.Create(&ledger.Account{Uid: 9}).Error)
}

func (s *InteractiveTestSuite) TestRate() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		req      web.RateReq
		wantCode int
		after    func(t *testing.T)
	}{
		{
			name: "首次评分",
			before: func(t *testing.T) {
				s.ratingProducer.EXPECT().
					Produce(gomock.Any(), events.RatingEvent{StoryId: 1, Uid: uid, Rating: 4}).
					Return(nil)
			},
			req: web.RateReq{StoryId: 1, Rating: 4},
			after: func(t *testing.T) {
				s.assertRating(t, 4)
			},
		},
		{
			name: "修改评分, 仍然只有一条记录",
			before: func(t *testing.T) {
				s.ratingProducer.EXPECT().
					Produce(gomock.Any(), events.RatingEvent{StoryId: 1, Uid: uid, Rating: 2}).
					Return(nil)
			},
			req: web.RateReq{StoryId: 1, Rating: 2},
			after: func(t *testing.T) {
				s.assertRating(t, 2)
			},
		},
		{
			name: "消息发送失败不影响评分",
			before: func(t *testing.T) {
				s.ratingProducer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					Return(errors.New("mock error"))
			},
			req: web.RateReq{StoryId: 1, Rating: 5},
			after: func(t *testing.T) {
				s.assertRating(t, 5)
			},
		},
		{
			name:     "评分超出范围",
			before:   func(t *testing.T) {},
			req:      web.RateReq{StoryId: 1, Rating: 6},
			wantCode: 521002,
			after: func(t *testing.T) {
				s.assertRating(t, 5)
			},
		},
		{
			name:     "作品已删除",
			before:   func(t *testing.T) {},
			req:      web.RateReq{StoryId: 2, Rating: 3},
			wantCode: 521003,
			after:    func(t *testing.T) {},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost, "/intr/rate", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tc.wantCode, recorder.MustScan().Code)
			tc.after(t)
		})
	}
}

func (s *InteractiveTestSuite) assertRating(t *testing.T, want int) {
	var ratings []ledger.Rating
	require.NoError(t, s.db.Where("obra_id = ? AND uid = ?", 1, uid).Find(&ratings).Error)
	require.Len(t, ratings, 1)
	assert.Equal(t, want, ratings[0].Rating)
}

func (s *InteractiveTestSuite) TestFollow() {
	t := s.T()
	ctx := context.Background()

	err := s.svc.Follow(ctx, uid, uid)
	assert.ErrorIs(t, err, service.ErrSelfFollow)

	err = s.svc.Follow(ctx, uid, 404)
	assert.ErrorIs(t, err, service.ErrAccountNotFound)

	s.followProducer.EXPECT().Produce(gomock.Any(), events.FollowEvent{
		FollowerId: uid, FollowedId: 9, Action: events.FollowActionFollow,
	}).Return(nil).Times(1)
	require.NoError(t, s.svc.Follow(ctx, uid, 9))
	// 重复关注不会再发消息
	require.NoError(t, s.svc.Follow(ctx, uid, 9))
	s.assertEdges(t, 1)

	s.followProducer.EXPECT().Produce(gomock.Any(), events.FollowEvent{
		FollowerId: uid, FollowedId: 9, Action: events.FollowActionUnfollow,
	}).Return(nil).Times(1)
	require.NoError(t, s.svc.Unfollow(ctx, uid, 9))
	require.NoError(t, s.svc.Unfollow(ctx, uid, 9))
	s.assertEdges(t, 0)
}

func (s *InteractiveTestSuite) assertEdges(t *testing.T, want int64) {
	var cnt int64
	require.NoError(t, s.db.Model(&ledger.Follower{}).
		Where("follower_id = ? AND followed_id = ?", uid, 9).Count(&cnt).Error)
	assert.Equal(t, want, cnt)
}

func (s *InteractiveTestSuite) TestStoryStat() {
	t := s.T()
	ctx := context.Background()
	require.NoError(t, s.db.Model(&ledger.Story{}).Where("id = ?", 1).
		Updates(map[string]any{"rating": 4.5, "votes": 2, "views": 10}).Error)

	stat, err := s.svc.StoryStat(ctx, 1, uid)
	require.NoError(t, err)
	assert.Equal(t, domain.StoryStat{StoryId: 1, Rating: 4.5, Votes: 2, Views: 10}, stat)

	require.NoError(t, s.db.Create(&ledger.Rating{ObraId: 1, Uid: uid, Rating: 3}).Error)
	stat, err = s.svc.StoryStat(ctx, 1, uid)
	require.NoError(t, err)
	assert.Equal(t, 3, stat.MyRating)

	_, err = s.svc.StoryStat(ctx, 2, uid)
	assert.ErrorIs(t, err, service.ErrStoryNotFound)
}
