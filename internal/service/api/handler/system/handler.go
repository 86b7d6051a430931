// Package system 헬스체크와 버전 정보 같은 시스템 엔드포인트 핸들러를 제공합니다.
package system

import (
	"net/http"
	"runtime"
	"time"

	"github.com/darkkaiser/deal-notifier/internal/pkg/version"
	"github.com/darkkaiser/deal-notifier/internal/service/api/constants"
	"github.com/darkkaiser/deal-notifier/internal/service/api/model/system"
	applog "github.com/darkkaiser/deal-notifier/pkg/log"
	"github.com/labstack/echo/v4"
)

// DispatcherHealth 발송 채널 자격 증명이 설정되어 있는지 알려줍니다.
type DispatcherHealth interface {
	Enabled() bool
}

// RecordHealth 발송 이력 저장소의 상태를 알려줍니다.
type RecordHealth interface {
	Loaded() bool
	Describe() string
}

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	dispatcher DispatcherHealth
	record     RecordHealth

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(dispatcher DispatcherHealth, record RecordHealth, buildInfo version.Info) *Handler {
	if dispatcher == nil {
		panic(constants.PanicMsgDispatcherRequired)
	}
	if record == nil {
		panic(constants.PanicMsgRecordRequired)
	}

	return &Handler{
		dispatcher: dispatcher,
		record:     record,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버와 의존성(발송 채널, 발송 이력 저장소)의 상태를 확인합니다.
// @Description 의존성 중 하나라도 정상이 아니면 status는 degraded가 됩니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	deps := map[string]system.DependencyStatus{
		constants.DependencyDispatcher:  dependencyStatus(h.dispatcher.Enabled(), constants.MsgDepStatusDispatcherOff),
		constants.DependencyRecordStore: dependencyStatus(h.record.Loaded(), constants.MsgDepStatusRecordLoadFailed),
	}

	status := constants.HealthStatusHealthy
	for _, dep := range deps {
		if dep.Status != constants.HealthStatusHealthy {
			status = constants.HealthStatusDegraded
			break
		}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       status,
		Uptime:       int64(time.Since(h.serverStartTime).Seconds()),
		Dependencies: deps,
	})
}

func dependencyStatus(ok bool, failureMessage string) system.DependencyStatus {
	if ok {
		return system.DependencyStatus{Status: constants.HealthStatusHealthy, Message: constants.MsgDepStatusHealthy}
	}
	return system.DependencyStatus{Status: constants.HealthStatusUnhealthy, Message: failureMessage}
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 빌드 버전, 커밋, 빌드 시각, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   runtime.Version(),
	})
}
