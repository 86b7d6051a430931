package source

import (
	apperrors "github.com/darkkaiser/deal-notifier/internal/pkg/errors"
)

// NewErrUnsupportedKind 지원하지 않는 소스 종류일 때의 에러를 생성합니다.
func NewErrUnsupportedKind(id, kind string) error {
	return apperrors.Newf(apperrors.InvalidInput, "소스(%s)의 종류 '%s'는 지원하지 않습니다 (html, rss 중 하나)", id, kind)
}

// NewErrInvalidURL 소스 URL이 절대 경로가 아닐 때의 에러를 생성합니다.
func NewErrInvalidURL(err error, id, rawURL string) error {
	if err == nil {
		return apperrors.Newf(apperrors.InvalidInput, "소스(%s)의 URL '%s'은 절대 경로여야 합니다", id, rawURL)
	}
	return apperrors.Wrapf(err, apperrors.InvalidInput, "소스(%s)의 URL '%s'을 해석할 수 없습니다", id, rawURL)
}

// NewErrInvalidOptions 소스 옵션 값이 잘못되었을 때의 에러를 생성합니다.
func NewErrInvalidOptions(err error, id, field string) error {
	return apperrors.Wrapf(err, apperrors.InvalidInput, "소스(%s)의 %s 설정이 올바르지 않습니다", id, field)
}

// NewErrFetchFailed 소스 페이지를 가져오지 못했을 때의 에러를 생성합니다.
func NewErrFetchFailed(err error, id string) error {
	return apperrors.Wrapf(err, apperrors.ExecutionFailed, "소스(%s) 수집에 실패했습니다", id)
}

// NewErrFeedParseFailed 피드 파싱에 실패했을 때의 에러를 생성합니다.
func NewErrFeedParseFailed(err error, id string) error {
	return apperrors.Wrapf(err, apperrors.ParsingFailed, "소스(%s)의 피드를 해석할 수 없습니다", id)
}

// NewErrDuplicateID 정규화한 소스 ID가 겹칠 때의 에러를 생성합니다.
func NewErrDuplicateID(id string) error {
	return apperrors.Newf(apperrors.InvalidInput, "소스 ID(%s)가 중복되었습니다", id)
}
