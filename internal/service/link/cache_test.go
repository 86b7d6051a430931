package link

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockShortener struct {
	mock.Mock
}

var _ Shortener = (*mockShortener)(nil)

func (m *mockShortener) Shorten(ctx context.Context, longURL string) (string, error) {
	args := m.Called(ctx, longURL)
	return args.String(0), args.Error(1)
}

type mockMemcache struct {
	mock.Mock
}

var _ memcacheClient = (*mockMemcache)(nil)

func (m *mockMemcache) Get(key string) (*memcache.Item, error) {
	args := m.Called(key)
	item, _ := args.Get(0).(*memcache.Item)
	return item, args.Error(1)
}

func (m *mockMemcache) Set(item *memcache.Item) error {
	return m.Called(item).Error(0)
}

func TestCachedShortener(t *testing.T) {
	t.Parallel()

	const longURL = "https://x/p1?aff_id=AB12"
	key := cacheKey(longURL)

	t.Run("캐시 적중 시 API를 호출하지 않음", func(t *testing.T) {
		delegate := &mockShortener{}
		mc := &mockMemcache{}
		mc.On("Get", key).Return(&memcache.Item{Key: key, Value: []byte("https://bit.ly/cached")}, nil)

		s := newCachedShortener(delegate, mc, time.Hour)
		short, err := s.Shorten(context.Background(), longURL)

		require.NoError(t, err)
		assert.Equal(t, "https://bit.ly/cached", short)
		delegate.AssertNotCalled(t, "Shorten", mock.Anything, mock.Anything)
	})

	t.Run("캐시 미스 시 API 결과를 저장", func(t *testing.T) {
		delegate := &mockShortener{}
		delegate.On("Shorten", mock.Anything, longURL).Return("https://bit.ly/new", nil)
		mc := &mockMemcache{}
		mc.On("Get", key).Return(nil, memcache.ErrCacheMiss)
		mc.On("Set", mock.MatchedBy(func(item *memcache.Item) bool {
			return item.Key == key && string(item.Value) == "https://bit.ly/new" && item.Expiration == 3600
		})).Return(nil)

		s := newCachedShortener(delegate, mc, time.Hour)
		short, err := s.Shorten(context.Background(), longURL)

		require.NoError(t, err)
		assert.Equal(t, "https://bit.ly/new", short)
		mc.AssertExpectations(t)
	})

	t.Run("캐시 서버 장애는 무시", func(t *testing.T) {
		delegate := &mockShortener{}
		delegate.On("Shorten", mock.Anything, longURL).Return("https://bit.ly/new", nil)
		mc := &mockMemcache{}
		mc.On("Get", key).Return(nil, errors.New("connection refused"))
		mc.On("Set", mock.Anything).Return(errors.New("connection refused"))

		s := newCachedShortener(delegate, mc, time.Hour)
		short, err := s.Shorten(context.Background(), longURL)

		require.NoError(t, err)
		assert.Equal(t, "https://bit.ly/new", short)
	})

	t.Run("API 실패는 캐시에 저장하지 않고 에러 반환", func(t *testing.T) {
		delegate := &mockShortener{}
		delegate.On("Shorten", mock.Anything, longURL).Return("", ErrMissingLink)
		mc := &mockMemcache{}
		mc.On("Get", key).Return(nil, memcache.ErrCacheMiss)

		s := newCachedShortener(delegate, mc, time.Hour)
		_, err := s.Shorten(context.Background(), longURL)

		assert.ErrorIs(t, err, ErrMissingLink)
		mc.AssertNotCalled(t, "Set", mock.Anything)
	})
}

func TestCacheKey(t *testing.T) {
	t.Parallel()

	key := cacheKey("https://x/p1 with space")

	assert.LessOrEqual(t, len(key), 250)
	assert.NotContains(t, key, " ")
	assert.Equal(t, key, cacheKey("https://x/p1 with space"))
}
