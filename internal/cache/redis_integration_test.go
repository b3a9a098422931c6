//go:build integration
// +build integration

package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RedisCacheTestSuite struct {
	suite.Suite
	pool     *dockertest.Pool
	resource *dockertest.Resource
	cache    *RedisCache
}

func (s *RedisCacheTestSuite) SetupSuite() {
	pool, err := dockertest.NewPool("")
	require.NoError(s.T(), err)
	s.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(s.T(), err)
	s.resource = resource

	addr := fmt.Sprintf("127.0.0.1:%s", resource.GetPort("6379/tcp"))
	pool.MaxWait = time.Minute
	require.NoError(s.T(), pool.Retry(func() error {
		c, err := NewRedisCache(context.Background(), addr, "", 0, time.Minute)
		if err != nil {
			return err
		}
		s.cache = c
		return nil
	}))
}

func (s *RedisCacheTestSuite) TearDownSuite() {
	if s.cache != nil {
		_ = s.cache.Close()
	}
	if s.pool != nil && s.resource != nil {
		_ = s.pool.Purge(s.resource)
	}
}

func (s *RedisCacheTestSuite) SetupTest() {
	require.NoError(s.T(), s.cache.Invalidate(context.Background()))
}

func (s *RedisCacheTestSuite) TestGet_Miss() {
	var dest []string
	hit, err := s.cache.Get(context.Background(), KeyMenu, &dest)
	s.NoError(err)
	s.False(hit)
}

func (s *RedisCacheTestSuite) TestSetThenGet() {
	ctx := context.Background()
	s.Require().NoError(s.cache.Set(ctx, KeyMenu, []string{"Завтрак", "Обед"}))

	var dest []string
	hit, err := s.cache.Get(ctx, KeyMenu, &dest)
	s.NoError(err)
	s.True(hit)
	s.Equal([]string{"Завтрак", "Обед"}, dest)
}

func (s *RedisCacheTestSuite) TestInvalidate_DropsViews() {
	ctx := context.Background()
	gen, err := s.cache.Generation(ctx)
	s.Require().NoError(err)
	key := VersionedKey(KeyOverview, gen)
	s.Require().NoError(s.cache.Set(ctx, key, map[string]int{"dishes": 3}))
	s.Require().NoError(s.cache.Invalidate(ctx))

	var dest map[string]int
	hit, err := s.cache.Get(ctx, key, &dest)
	s.NoError(err)
	s.False(hit)
}

func (s *RedisCacheTestSuite) TestInvalidate_HidesViewsWrittenUnderOlderGeneration() {
	ctx := context.Background()
	before, err := s.cache.Generation(ctx)
	s.Require().NoError(err)

	// a read loaded its rows at `before`, then a mutation invalidated, then the read stores its view
	s.Require().NoError(s.cache.Invalidate(ctx))
	s.Require().NoError(s.cache.Set(ctx, VersionedKey(KeyMenu, before), []string{"stale"}))

	after, err := s.cache.Generation(ctx)
	s.Require().NoError(err)
	s.Equal(before+1, after)

	var dest []string
	hit, err := s.cache.Get(ctx, VersionedKey(KeyMenu, after), &dest)
	s.NoError(err)
	s.False(hit)
}

func TestRedisCacheTestSuite(t *testing.T) {
	suite.Run(t, new(RedisCacheTestSuite))
}
