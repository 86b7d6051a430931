package api

import (
	"github.com/darkkaiser/deal-notifier/internal/service/api/handler/deal"
	"github.com/darkkaiser/deal-notifier/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes API 서비스의 라우트를 등록합니다.
//
//   - 시스템: /health, /version
//   - 서비스: / (상태), /trigger (즉시 실행, GET/POST), /test (테스트 메시지)
//   - API 문서: /swagger/*
func RegisterRoutes(e *echo.Echo, systemHandler *system.Handler, dealHandler *deal.Handler) {
	e.GET("/health", systemHandler.HealthCheckHandler)
	e.GET("/version", systemHandler.VersionHandler)

	e.GET("/", dealHandler.StatusHandler)
	e.GET("/trigger", dealHandler.TriggerHandler)
	e.POST("/trigger", dealHandler.TriggerHandler)
	e.POST("/test", dealHandler.TestMessageHandler)

	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/swagger/doc.json"),
		echoSwagger.DeepLinking(true),
		echoSwagger.DocExpansion("list"),
	))
}
