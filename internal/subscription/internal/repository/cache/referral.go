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

package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/ecodeclub/ecache"
)

var ErrKeyNotExist = errors.New("缓存中没有该推荐码")

//go:generate mockgen -source=./referral.go -package=cachemocks -destination=mocks/referral.mock.go -typed ReferralCache
type ReferralCache interface {
	// Get 返回推荐码对应的用户 ID
	Get(ctx context.Context, code string) (int64, error)
	Set(ctx context.Context, code string, uid int64) error
}

type ReferralECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

// NewReferralECache 推荐码一旦生成就不会变, 过期时间可以长一点
func NewReferralECache(c ecache.Cache) ReferralCache {
	return &ReferralECache{
		cache: &ecache.NamespaceCache{
			Namespace: "subscription:referral:",
			C:         c,
		},
		expiration: time.Hour * 24,
	}
}

func (c *ReferralECache) Get(ctx context.Context, code string) (int64, error) {
	val := c.cache.Get(ctx, code)
	if val.KeyNotFound() {
		return 0, ErrKeyNotExist
	}
	if val.Err != nil {
		return 0, val.Err
	}
	str, err := val.String()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(str, 10, 64)
}

func (c *ReferralECache) Set(ctx context.Context, code string, uid int64) error {
	return c.cache.Set(ctx, code, strconv.FormatInt(uid, 10), c.expiration)
}
