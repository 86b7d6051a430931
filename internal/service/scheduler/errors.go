package scheduler

import (
	apperrors "github.com/darkkaiser/deal-notifier/internal/pkg/errors"
)

// NewErrInvalidCronSpec 실행 주기 표현식이 올바르지 않아 스케줄 등록에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrInvalidCronSpec(spec string, cause error) error {
	return apperrors.Wrapf(cause, apperrors.InvalidInput, "스케줄 등록 실패: 잘못된 실행 주기 표현식입니다 ('%s')", spec)
}

// NewErrRunQueueTimeout 진행 중인 실행이 끝나기 전에 즉시 실행 요청의 대기 시간이 만료되었을 때의 에러를 생성합니다.
func NewErrRunQueueTimeout(cause error) error {
	return apperrors.Wrap(cause, apperrors.Unavailable, "진행 중인 실행이 끝나지 않아 요청을 처리하지 못했습니다. 잠시 후 다시 시도해주세요")
}
