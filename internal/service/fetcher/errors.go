package fetcher

import (
	"fmt"
	"net/http"

	apperrors "github.com/darkkaiser/deal-notifier/internal/pkg/errors"
)

// NewErrResponseBodyTooLarge 응답 본문을 읽는 도중 크기 제한을 넘었을 때의 에러를 생성합니다.
func NewErrResponseBodyTooLarge(limit int64) error {
	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("응답 본문 크기가 제한(%d 바이트)을 초과했습니다", limit))
}

// NewErrResponseBodyTooLargeByContentLength Content-Length 헤더만으로 제한 초과가 확인되었을 때의 에러를 생성합니다.
func NewErrResponseBodyTooLargeByContentLength(contentLength, limit int64) error {
	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("응답 본문 크기(%d 바이트)가 제한(%d 바이트)을 초과했습니다", contentLength, limit))
}

// CheckResponseStatus 허용되지 않은 상태 코드를 도메인 에러로 변환합니다. allowed가 비어 있으면 200 OK만 허용합니다.
// 5xx와 429는 일시적인 장애로 보고 Unavailable, 그 외는 ExecutionFailed로 분류합니다.
func CheckResponseStatus(resp *http.Response, allowed ...int) error {
	if isAllowedStatus(resp.StatusCode, allowed) {
		return nil
	}

	errType := apperrors.ExecutionFailed
	if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
		errType = apperrors.Unavailable
	}

	url := ""
	if resp.Request != nil {
		url = RedactURL(resp.Request.URL)
	}

	return apperrors.New(errType, fmt.Sprintf("HTTP 요청이 실패했습니다. 상태 코드: %d (%s)", resp.StatusCode, url))
}
