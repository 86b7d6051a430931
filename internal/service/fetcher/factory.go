package fetcher

import "time"

// Config 기본 Fetcher 체인 구성 값입니다.
type Config struct {
	Timeout   time.Duration
	UserAgent string

	// MaxBytes 0이면 기본값(10MB), NoLimit이면 제한하지 않습니다.
	MaxBytes int64

	// AllowedStatusCodes 비어 있으면 200 OK만 허용합니다.
	AllowedStatusCodes []int
}

// New 설정에 따라 기본 데코레이터 체인을 조립합니다.
//
//	HTTPFetcher -> UserAgentFetcher -> LoggingFetcher -> StatusCodeFetcher -> MaxBytesFetcher
func New(cfg Config) Fetcher {
	return Wrap(NewHTTPFetcher(cfg.Timeout), cfg)
}

// Wrap 이미 만들어진 최하단 Fetcher 위에 기본 데코레이터 체인을 조립합니다.
func Wrap(base Fetcher, cfg Config) Fetcher {
	var uas []string
	if cfg.UserAgent != "" {
		uas = []string{cfg.UserAgent}
	}

	var f Fetcher = NewUserAgentFetcher(base, uas...)
	f = NewLoggingFetcher(f)
	f = NewStatusCodeFetcher(f, cfg.AllowedStatusCodes...)
	return NewMaxBytesFetcher(f, cfg.MaxBytes)
}
