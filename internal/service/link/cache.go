package link

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	applog "github.com/darkkaiser/deal-notifier/pkg/log"
)

const cacheKeyPrefix = "deal-notifier:shortlink:"

// memcacheClient 테스트에서 대체할 수 있도록 *memcache.Client에서 필요한 메서드만 정의합니다.
type memcacheClient interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
}

// CachedShortener 단축 결과를 memcached에 저장해 같은 URL에 대한 API 호출을 줄입니다.
// 캐시 조회/저장 실패는 무시하고 내부 Shortener로 진행합니다.
type CachedShortener struct {
	delegate Shortener
	client   memcacheClient
	ttl      time.Duration
}

var _ Shortener = (*CachedShortener)(nil)

// NewCachedShortener servers는 "host:port" 목록입니다.
func NewCachedShortener(delegate Shortener, servers []string, ttl time.Duration) *CachedShortener {
	return newCachedShortener(delegate, memcache.New(servers...), ttl)
}

func newCachedShortener(delegate Shortener, client memcacheClient, ttl time.Duration) *CachedShortener {
	if delegate == nil {
		panic("link: Shortener는 nil일 수 없습니다")
	}
	return &CachedShortener{delegate: delegate, client: client, ttl: ttl}
}

func (s *CachedShortener) Shorten(ctx context.Context, longURL string) (string, error) {
	key := cacheKey(longURL)

	if item, err := s.client.Get(key); err == nil && len(item.Value) > 0 {
		return string(item.Value), nil
	} else if err != nil && err != memcache.ErrCacheMiss {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err.Error(),
		}).Debug("단축 URL 캐시 조회 실패: 캐시 없이 진행합니다")
	}

	short, err := s.delegate.Shorten(ctx, longURL)
	if err != nil {
		return "", err
	}

	if err := s.client.Set(&memcache.Item{
		Key:        key,
		Value:      []byte(short),
		Expiration: int32(s.ttl / time.Second),
	}); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err.Error(),
		}).Debug("단축 URL 캐시 저장 실패")
	}

	return short, nil
}

// cacheKey memcached 키 제약(250바이트, 공백/제어문자 불가)을 지키기 위해 URL을 해시합니다.
func cacheKey(longURL string) string {
	sum := sha256.Sum256([]byte(longURL))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
