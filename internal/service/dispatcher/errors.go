package dispatcher

import (
	apperrors "github.com/darkkaiser/deal-notifier/internal/pkg/errors"
)

// NewErrDisabled 발송 채널이 비활성화된 상태에서 발송을 요청했을 때의 에러를 생성합니다.
func NewErrDisabled(reason string) error {
	return apperrors.Newf(apperrors.Unavailable, "발송 채널이 비활성화되어 있습니다: %s", reason)
}
