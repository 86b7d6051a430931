package middleware

import (
	"fmt"

	apperrors "github.com/darkkaiser/deal-notifier/internal/pkg/errors"
	"github.com/darkkaiser/deal-notifier/internal/service/api/constants"
	"github.com/darkkaiser/deal-notifier/internal/service/api/httputil"
)

var (
	// ErrRateLimitExceeded 허용된 요청 빈도를 초과한 클라이언트에게 반환하는 429 에러입니다.
	ErrRateLimitExceeded = httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)
)

// NewErrPanicRecovered 복구된 panic 값을 내부 오류로 변환합니다.
func NewErrPanicRecovered(r any) error {
	return apperrors.New(apperrors.Internal, fmt.Sprintf("%v", r))
}
