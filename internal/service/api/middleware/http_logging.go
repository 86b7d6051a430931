package middleware

import (
	"net/url"
	"strconv"
	"time"

	"github.com/darkkaiser/deal-notifier/internal/service/api/constants"
	applog "github.com/darkkaiser/deal-notifier/pkg/log"
	"github.com/darkkaiser/deal-notifier/pkg/strutil"
	"github.com/labstack/echo/v4"
)

// defaultBytesIn Content-Length 헤더가 없을 때 bytes_in 필드에 기록하는 값
const defaultBytesIn = "0"

// sensitiveQueryParams 요청 로그에서 값을 마스킹하는 쿼리 파라미터 목록입니다.
var sensitiveQueryParams = []string{
	"token",
	"access_token",
	"api_key",
	"secret",
	"password",
}

// HTTPLogger 요청/응답 정보를 구조화된 로그로 기록하는 미들웨어를 반환합니다.
//
// 핸들러 에러는 이 미들웨어 안에서 Echo 에러 핸들러로 전달되므로 기록되는 status는 최종 응답 코드입니다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			defer func() {
				latency := time.Since(start)

				path := req.URL.Path
				if path == "" {
					path = "/"
				}
				bytesIn := req.Header.Get(echo.HeaderContentLength)
				if bytesIn == "" {
					bytesIn = defaultBytesIn
				}

				applog.WithFields(applog.Fields{
					"method":     req.Method,
					"path":       path,
					"uri":        maskSensitiveQueryParams(req.RequestURI),
					"host":       req.Host,
					"protocol":   req.Proto,
					"remote_ip":  c.RealIP(),
					"user_agent": req.UserAgent(),

					"status":    res.Status,
					"bytes_in":  bytesIn,
					"bytes_out": strconv.FormatInt(res.Size, 10),

					"latency":       strconv.FormatInt(latency.Microseconds(), 10),
					"latency_human": latency.String(),

					"request_id": res.Header().Get(echo.HeaderXRequestID),
				}).Info(constants.LogMsgHTTPRequest)
			}()

			if err := next(c); err != nil {
				c.Error(err)
			}
			return nil
		}
	}
}

// maskSensitiveQueryParams URI의 민감한 쿼리 파라미터 값을 strutil.Mask로 가립니다.
// 파싱에 실패하면 원본을 그대로 반환합니다.
func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	q := u.Query()
	masked := false
	for _, param := range sensitiveQueryParams {
		if q.Has(param) {
			q.Set(param, strutil.Mask(q.Get(param)))
			masked = true
		}
	}
	if !masked {
		return uri
	}

	u.RawQuery = q.Encode()
	return u.String()
}
