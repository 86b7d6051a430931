package fetcher

import (
	"net/http"
	"slices"
)

// StatusCodeFetcher 허용된 상태 코드가 아닌 응답을 에러로 바꿉니다.
// 에러를 반환할 때는 응답 Body를 내부에서 정리하고 nil 응답을 반환합니다.
type StatusCodeFetcher struct {
	delegate Fetcher

	// allowedStatusCodes 비어 있으면 200 OK만 허용합니다.
	allowedStatusCodes []int
}

var _ Fetcher = (*StatusCodeFetcher)(nil)

func NewStatusCodeFetcher(delegate Fetcher, allowedStatusCodes ...int) *StatusCodeFetcher {
	return &StatusCodeFetcher{
		delegate:           delegate,
		allowedStatusCodes: allowedStatusCodes,
	}
}

func (f *StatusCodeFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}

	if statusErr := CheckResponseStatus(resp, f.allowedStatusCodes...); statusErr != nil {
		drainAndCloseBody(resp.Body)
		return nil, statusErr
	}

	return resp, nil
}

func isAllowedStatus(code int, allowed []int) bool {
	if len(allowed) == 0 {
		return code == http.StatusOK
	}
	return slices.Contains(allowed, code)
}
