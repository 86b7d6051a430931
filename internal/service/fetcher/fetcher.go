// Package fetcher 외부 HTTP 요청에 공통으로 쓰이는 Fetcher 인터페이스와 데코레이터들을 제공합니다.
//
// 소스 페이지 수집과 단축 URL API 호출은 모두 이 패키지의 Fetcher를 통해 나가며,
// 타임아웃, User-Agent, 로깅, 상태 코드 검사, 응답 크기 제한을 데코레이터 체인으로 조합합니다.
//
//	HTTPFetcher -> UserAgentFetcher -> LoggingFetcher -> StatusCodeFetcher -> MaxBytesFetcher
package fetcher

import (
	"context"
	"io"
	"net/http"
	"sync"
)

const component = "fetcher"

// Fetcher HTTP 요청을 수행하는 인터페이스입니다.
//
// 반환된 응답의 Body는 호출자가 닫아야 합니다.
// 에러와 함께 응답이 반환될 수 있으므로 에러 처리 시 응답도 확인해야 합니다.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// Get 지정된 URL로 GET 요청을 보냅니다. 요청이 실패하면 응답 Body를 정리한 뒤 에러만 반환합니다.
func Get(ctx context.Context, f Fetcher, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}

	return resp, nil
}

// maxDrainBytes 커넥션 재사용을 위해 Body를 비울 때 읽는 최대 크기입니다.
// 이보다 큰 응답의 커넥션은 재사용되지 않습니다.
const maxDrainBytes = 64 * 1024

var drainBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 32*1024)
		return &b
	},
}

// drainAndCloseBody Keep-Alive 커넥션이 풀로 돌아갈 수 있도록 Body를 일정량 읽어 버린 뒤 닫습니다.
func drainAndCloseBody(body io.ReadCloser) {
	if body == nil {
		return
	}
	defer body.Close()

	bufPtr := drainBufPool.Get().(*[]byte)
	defer drainBufPool.Put(bufPtr)

	_, _ = io.CopyBuffer(io.Discard, io.LimitReader(body, maxDrainBytes), *bufPtr)
}
