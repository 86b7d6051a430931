package link

import (
	"fmt"

	apperrors "github.com/darkkaiser/deal-notifier/internal/pkg/errors"
)

var (
	// ErrMissingLink 성공 응답에 단축 URL(link)이 없을 때 반환됩니다.
	ErrMissingLink = apperrors.New(apperrors.ParsingFailed, "단축 URL 응답에 link 필드가 없습니다")
)

// NewErrShortenFailed 단축 URL 요청을 보내지 못했거나 응답을 읽지 못했을 때의 에러를 생성합니다.
func NewErrShortenFailed(err error, longURL string) error {
	return apperrors.Wrap(err, apperrors.Unavailable, fmt.Sprintf("단축 URL 요청에 실패했습니다 (url=%s)", longURL))
}

// NewErrUnexpectedStatus 단축 URL API가 200/201 이외의 상태 코드를 반환했을 때의 에러를 생성합니다.
func NewErrUnexpectedStatus(status int, message string) error {
	if message == "" {
		return apperrors.New(apperrors.ExecutionFailed, fmt.Sprintf("단축 URL API가 예상하지 못한 상태 코드를 반환했습니다: %d", status))
	}
	return apperrors.New(apperrors.ExecutionFailed, fmt.Sprintf("단축 URL API가 예상하지 못한 상태 코드를 반환했습니다: %d (%s)", status, message))
}
