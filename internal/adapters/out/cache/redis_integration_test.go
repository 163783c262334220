package cache_test

import (
	"context"
	"testing"
	"time"

	"parcelhub/internal/adapters/out/cache"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

type dashboard struct {
	Total   int64           `json:"total"`
	Revenue decimal.Decimal `json:"revenue"`
}

type RedisStatsCacheTestSuite struct {
	suite.Suite
	ctx       context.Context
	container testcontainers.Container
	cache     *cache.RedisStatsCache
}

func TestRedisStatsCacheTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis container tests in short mode")
	}
	suite.Run(t, new(RedisStatsCacheTestSuite))
}

func (s *RedisStatsCacheTestSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := testcontainers.GenericContainer(s.ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	s.Require().NoError(err)
	s.container = container

	addr, err := container.PortEndpoint(s.ctx, "6379/tcp", "")
	s.Require().NoError(err)

	rdb, err := cache.NewRedisClient(s.ctx, cache.Options{Addr: addr}, zap.NewNop())
	s.Require().NoError(err)
	s.cache = cache.NewRedisStatsCache(rdb)
}

func (s *RedisStatsCacheTestSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *RedisStatsCacheTestSuite) TestMissIsNotAnError() {
	var got dashboard
	found, err := s.cache.Get(s.ctx, "parcelhub:test:missing", &got)

	s.Require().NoError(err)
	s.False(found)
}

func (s *RedisStatsCacheTestSuite) TestRoundTripKeepsExactDecimals() {
	want := dashboard{Total: 3, Revenue: decimal.RequireFromString("2123.45")}
	s.Require().NoError(s.cache.Set(s.ctx, "parcelhub:test:roundtrip", want, time.Minute))

	var got dashboard
	found, err := s.cache.Get(s.ctx, "parcelhub:test:roundtrip", &got)

	s.Require().NoError(err)
	s.True(found)
	s.Equal(want.Total, got.Total)
	s.True(want.Revenue.Equal(got.Revenue))
}

func (s *RedisStatsCacheTestSuite) TestDelete() {
	s.Require().NoError(s.cache.Set(s.ctx, "parcelhub:test:a", dashboard{Total: 1}, time.Minute))
	s.Require().NoError(s.cache.Set(s.ctx, "parcelhub:test:b", dashboard{Total: 2}, time.Minute))

	s.Require().NoError(s.cache.Delete(s.ctx, "parcelhub:test:a", "parcelhub:test:b"))
	s.Require().NoError(s.cache.Delete(s.ctx))

	var got dashboard
	found, err := s.cache.Get(s.ctx, "parcelhub:test:a", &got)
	s.Require().NoError(err)
	s.False(found)
}

func (s *RedisStatsCacheTestSuite) TestTTLExpires() {
	s.Require().NoError(s.cache.Set(s.ctx, "parcelhub:test:ttl", dashboard{Total: 1}, time.Second))

	s.Eventually(func() bool {
		var got dashboard
		found, err := s.cache.Get(s.ctx, "parcelhub:test:ttl", &got)
		return err == nil && !found
	}, 5*time.Second, 200*time.Millisecond)
}

func (s *RedisStatsCacheTestSuite) TestPing() {
	s.Require().NoError(s.cache.Ping(s.ctx))
}
