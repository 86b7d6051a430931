// Package httputil API 핸들러가 공통으로 사용하는 에러 생성/응답 헬퍼를 제공합니다.
package httputil

import (
	"net/http"

	"github.com/darkkaiser/deal-notifier/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
)

func newHTTPError(code int, message string) error {
	return echo.NewHTTPError(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다
func NewTooManyRequestsError(message string) error {
	return newHTTPError(http.StatusTooManyRequests, message)
}

// NewInternalServerError 500 Internal Server Error 에러를 생성합니다
func NewInternalServerError(message string) error {
	return newHTTPError(http.StatusInternalServerError, message)
}

// NewBadGatewayError 502 Bad Gateway 에러를 생성합니다.
// 외부 발송 채널 호출이 실패한 경우에 사용합니다.
func NewBadGatewayError(message string) error {
	return newHTTPError(http.StatusBadGateway, message)
}

// NewServiceUnavailableError 503 Service Unavailable 에러를 생성합니다
func NewServiceUnavailableError(message string) error {
	return newHTTPError(http.StatusServiceUnavailable, message)
}

// Success 200 OK와 함께 SuccessResponse를 반환합니다.
func Success(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, response.SuccessResponse{
		ResultCode: 0,
		Message:    message,
	})
}
