package record

import (
	"context"
	"os"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/deal-notifier/internal/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 실제 Redis 서버가 필요한 테스트는 이 환경변수가 설정된 경우에만 실행합니다.
const testRedisAddrEnv = "DEAL_TEST_REDIS_ADDR"

func TestRedisStore_Describe(t *testing.T) {
	t.Parallel()

	s := NewRedisStore(RedisOptions{Addr: "localhost:6379", Key: "deal-notifier:delivered"})
	defer s.Close()

	assert.Equal(t, "redis:localhost:6379/deal-notifier:delivered", s.Describe())
}

func TestRedisStore_NilClientPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		newRedisStore(nil, "k", "addr")
	})
}

func TestRedisStore_Unreachable(t *testing.T) {
	t.Parallel()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	s := newRedisStore(client, "deal-notifier:delivered", "127.0.0.1:1")
	defer s.Close()

	ctx := context.Background()

	_, err := s.Load(ctx)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.System))

	err = s.Save(ctx, []string{"aaa"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.System))

	assert.Error(t, s.Ping(ctx))
}

func TestRedisStore_RoundTrip(t *testing.T) {
	addr := os.Getenv(testRedisAddrEnv)
	if addr == "" {
		t.Skipf("%s 환경변수가 설정되지 않아 건너뜁니다", testRedisAddrEnv)
	}

	ctx := context.Background()
	key := "deal-notifier:test:" + t.Name()

	s := NewRedisStore(RedisOptions{Addr: addr, Key: key})
	defer s.Close()
	t.Cleanup(func() { _ = s.client.Del(context.Background(), key).Err() })

	require.NoError(t, s.Ping(ctx))

	require.NoError(t, s.Save(ctx, []string{"aaa", "bbb"}))
	fps, err := s.Load(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"aaa", "bbb"}, fps)

	require.NoError(t, s.Save(ctx, []string{"ccc"}))
	fps, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ccc"}, fps)

	require.NoError(t, s.Save(ctx, nil))
	fps, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, fps)
}
