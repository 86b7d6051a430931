package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/deal-notifier/internal/service/api/constants"
	"github.com/darkkaiser/deal-notifier/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/deal-notifier/internal/service/api/middleware"
	applog "github.com/darkkaiser/deal-notifier/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	Debug bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	AllowOrigins []string

	// WriteTimeout 응답 쓰기 제한 시간입니다.
	// 동기 실행(/trigger)은 대기 시간과 실행 시간을 모두 포함해야 하므로 호출자가 계산해 넘깁니다.
	// 0이면 DefaultWriteTimeout을 사용합니다.
	WriteTimeout time.Duration

	// RateLimitPerSecond, RateLimitBurst IP별 요청 제한. 0이면 기본값을 사용합니다.
	RateLimitPerSecond int
	RateLimitBurst     int
}

// NewHTTPServer 미들웨어 체인이 구성된 Echo 인스턴스를 생성합니다.
//
// 미들웨어 적용 순서:
//  1. PanicRecovery: 이후 미들웨어와 핸들러의 panic까지 복구
//  2. RequestID: 로그에 request_id가 남도록 로깅보다 먼저 적용
//  3. Server 헤더 제거
//  4. HTTPLogger: 429/413 응답도 기록되도록 제한 미들웨어보다 먼저 적용
//  5. RateLimit
//  6. BodyLimit
//  7. CORS
//  8. Secure
//
// 요청 단위 Timeout 미들웨어는 사용하지 않습니다. 실행 대기 시간은 핸들러가 직접 제한합니다.
// 라우트는 포함되지 않으며 RegisterRoutes로 별도 등록합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	writeTimeout := cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = constants.DefaultWriteTimeout
	}
	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = writeTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	e.Logger = appmiddleware.NewEchoLogger(applog.StandardLogger())
	e.HTTPErrorHandler = httputil.ErrorHandler

	rps, burst := cfg.RateLimitPerSecond, cfg.RateLimitBurst
	if rps <= 0 {
		rps = constants.DefaultRateLimitPerSecond
	}
	if burst <= 0 {
		burst = constants.DefaultRateLimitBurst
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	e.Use(appmiddleware.HTTPLogger())
	e.Use(appmiddleware.RateLimit(rps, burst))
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))
	e.Use(middleware.Secure())

	return e
}
