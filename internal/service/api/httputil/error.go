package httputil

import (
	"errors"
	"net/http"

	"github.com/darkkaiser/deal-notifier/internal/service/api/constants"
	"github.com/darkkaiser/deal-notifier/internal/service/api/model/response"
	applog "github.com/darkkaiser/deal-notifier/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 에러를 ErrorResponse JSON 형식으로 변환합니다.
// echo.HTTPError가 아닌 에러는 내부 정보를 노출하지 않도록 500과 고정 메시지로 응답합니다.
func ErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := constants.ErrMsgInternalServer

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch msg := he.Message.(type) {
		case string:
			message = msg
		case response.ErrorResponse:
			message = msg.Message
		}
	}

	// Echo 기본 영문 메시지는 한국어 메시지로 치환한다.
	switch {
	case code == http.StatusNotFound && message == http.StatusText(http.StatusNotFound):
		message = constants.ErrMsgNotFound
	case code == http.StatusRequestEntityTooLarge && message == http.StatusText(http.StatusRequestEntityTooLarge):
		message = constants.ErrMsgRequestEntityTooLarge
	}

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}
