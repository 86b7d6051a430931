package link

import (
	"time"

	"github.com/darkkaiser/deal-notifier/internal/service/fetcher"
	applog "github.com/darkkaiser/deal-notifier/pkg/log"
)

const maxResponseBytes = 64 * 1024

// ShortenerConfig NewShortener에 필요한 설정입니다.
type ShortenerConfig struct {
	Endpoint        string
	Token           string
	Timeout         time.Duration
	UserAgent       string
	MemcacheServers []string
	CacheTTL        time.Duration
}

// NewShortener 설정에 맞는 Shortener를 조립합니다.
//
// 토큰이 없으면 원본 URL을 그대로 쓰는 Shortener를 반환하고,
// memcached 서버가 지정되면 캐시 데코레이터를 씌웁니다.
func NewShortener(cfg ShortenerConfig) Shortener {
	if cfg.Token == "" {
		applog.WithComponent(component).Info("단축 URL 토큰이 없어 원본 링크를 그대로 사용합니다")
		return NewNopShortener()
	}

	// 실패 응답의 message 필드를 읽어야 하므로 상태 코드 검사는 BitlyShortener가 직접 수행한다.
	var f fetcher.Fetcher = fetcher.NewHTTPFetcher(cfg.Timeout)
	f = fetcher.NewUserAgentFetcher(f, cfg.UserAgent)
	f = fetcher.NewLoggingFetcher(f)
	f = fetcher.NewMaxBytesFetcher(f, maxResponseBytes)

	var s Shortener = NewBitlyShortener(f, cfg.Endpoint, cfg.Token)

	if len(cfg.MemcacheServers) > 0 {
		applog.WithComponentAndFields(component, applog.Fields{
			"servers": cfg.MemcacheServers,
			"ttl":     cfg.CacheTTL.String(),
		}).Info("단축 URL 캐시(memcached)를 사용합니다")
		s = NewCachedShortener(s, cfg.MemcacheServers, cfg.CacheTTL)
	}

	return s
}
