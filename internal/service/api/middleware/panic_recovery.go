package middleware

import (
	"net/http"
	"runtime"

	"github.com/darkkaiser/deal-notifier/internal/service/api/constants"
	applog "github.com/darkkaiser/deal-notifier/pkg/log"
	"github.com/labstack/echo/v4"
)

// stackBufferSize panic 발생 시 수집하는 스택 트레이스의 최대 크기 (4KB)
const stackBufferSize = 4 << 10

// PanicRecovery 핸들러에서 발생한 panic을 복구하고 스택 트레이스와 함께 기록하는 미들웨어를 반환합니다.
//
// 복구된 panic은 에러로 변환되어 Echo 에러 핸들러로 전달되므로 클라이언트는 500 응답을 받습니다.
// http.ErrAbortHandler는 net/http가 처리하도록 다시 panic 합니다.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (returnErr error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				err, ok := r.(error)
				if !ok {
					err = NewErrPanicRecovered(r)
				}

				stack := make([]byte, stackBufferSize)
				length := runtime.Stack(stack, false)

				fields := applog.Fields{
					"error":  err,
					"stack":  string(stack[:length]),
					"path":   c.Request().URL.Path,
					"method": c.Request().Method,
				}
				if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
					fields["request_id"] = requestID
				}

				applog.WithComponentAndFields(constants.ComponentMiddlewarePanicRecovery, fields).Error(constants.LogMsgPanicRecovered)

				returnErr = err
			}()

			return next(c)
		}
	}
}
