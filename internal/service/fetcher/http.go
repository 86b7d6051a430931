package fetcher

import (
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

// HTTPFetcher 타임아웃이 설정된 http.Client로 요청을 수행하는 체인의 최하단 Fetcher입니다.
type HTTPFetcher struct {
	client *http.Client
}

var _ Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher timeout이 0 이하이면 기본값(30초)을 사용합니다.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// NewHTTPFetcherWithClient 외부에서 구성한 http.Client를 사용합니다. (테스트 서버 연동 등)
func NewHTTPFetcherWithClient(client *http.Client) *HTTPFetcher {
	if client == nil {
		panic("fetcher: http.Client는 nil일 수 없습니다")
	}
	return &HTTPFetcher{client: client}
}

func (h *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}
