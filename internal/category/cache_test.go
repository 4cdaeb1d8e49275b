package category

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNewCacheDefaultsTTL(t *testing.T) {
	c := NewCache(unreachableRedis(t), 0)
	assert.Equal(t, defaultCacheTTL, c.ttl)

	c = NewCache(unreachableRedis(t), time.Minute)
	assert.Equal(t, time.Minute, c.ttl)
}

func TestServiceSurvivesUnreachableRedis(t *testing.T) {
	svc := newTestService(seededStore(), NewCache(unreachableRedis(t), time.Minute))

	types, err := svc.Types(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Science", "Art", "Geography"}, types)
}
