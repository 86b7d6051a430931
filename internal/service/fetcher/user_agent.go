package fetcher

import (
	"math/rand/v2"
	"net/http"
)

// defaultUserAgents 설정된 User-Agent가 없을 때 무작위로 고르는 브라우저 User-Agent 목록입니다.
var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0",
}

// UserAgentFetcher 요청에 User-Agent가 없을 때만 목록에서 하나를 골라 주입합니다.
// 원본 요청은 변경하지 않고 복제본에 설정합니다.
type UserAgentFetcher struct {
	delegate   Fetcher
	userAgents []string
}

var _ Fetcher = (*UserAgentFetcher)(nil)

func NewUserAgentFetcher(delegate Fetcher, userAgents ...string) *UserAgentFetcher {
	return &UserAgentFetcher{
		delegate:   delegate,
		userAgents: userAgents,
	}
}

func (f *UserAgentFetcher) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return f.delegate.Do(req)
	}

	uas := f.userAgents
	if len(uas) == 0 {
		uas = defaultUserAgents
	}

	clonedReq := req.Clone(req.Context())
	clonedReq.Header.Set("User-Agent", uas[rand.IntN(len(uas))])

	return f.delegate.Do(clonedReq)
}
