// Package api 상태 조회와 수동 실행을 위한 Echo 기반 HTTP 서버를 제공합니다.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	_ "github.com/darkkaiser/deal-notifier/docs"
	"github.com/darkkaiser/deal-notifier/internal/config"
	"github.com/darkkaiser/deal-notifier/internal/pkg/version"
	"github.com/darkkaiser/deal-notifier/internal/service/api/constants"
	"github.com/darkkaiser/deal-notifier/internal/service/api/handler/deal"
	"github.com/darkkaiser/deal-notifier/internal/service/api/handler/system"
	"github.com/darkkaiser/deal-notifier/internal/service/dispatcher"
	applog "github.com/darkkaiser/deal-notifier/pkg/log"
	"github.com/labstack/echo/v4"
)

const (
	// shutdownTimeout Graceful Shutdown 시 최대 대기 시간
	shutdownTimeout = 5 * time.Second

	// fatalNoticeTimeout 서버 오류 알림 발송의 최대 대기 시간
	fatalNoticeTimeout = 15 * time.Second
)

// Record 발송 이력의 상태 조회 인터페이스입니다.
type Record interface {
	Len() int
	Loaded() bool
	Describe() string
}

// Dependencies API 서비스가 조회/호출하는 구성 요소입니다.
type Dependencies struct {
	Trigger    deal.Trigger
	RunStatus  deal.RunStatus
	Record     Record
	Dispatcher dispatcher.Dispatcher
}

// Service 트리거/상태 조회 HTTP 서버의 생명주기를 관리합니다.
//
// Start로 시작하며, 전달된 context가 취소되면 Graceful Shutdown 후 WaitGroup에 완료를 알립니다.
type Service struct {
	appConfig *config.AppConfig

	deps Dependencies

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, deps Dependencies, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if deps.Trigger == nil {
		panic(constants.PanicMsgTriggerRequired)
	}
	if deps.RunStatus == nil {
		panic(constants.PanicMsgRunStatusRequired)
	}
	if deps.Record == nil {
		panic(constants.PanicMsgRecordRequired)
	}
	if deps.Dispatcher == nil {
		panic(constants.PanicMsgDispatcherRequired)
	}

	return &Service{
		appConfig: appConfig,
		deps:      deps,
		buildInfo: buildInfo,
	}
}

// Start API 서비스를 시작합니다.
//
// 서버는 별도 고루틴에서 실행되므로 이 함수는 즉시 반환됩니다.
// 이미 실행 중이면 경고만 남기고 serviceStopWG.Done을 호출합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)
	go func() {
		defer serviceStopWG.Done()
		s.waitForShutdown(serviceStopCtx, e, httpServerDone)
	}()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

// setupServer 핸들러를 만들고 미들웨어와 라우트가 구성된 Echo 인스턴스를 반환합니다.
func (s *Service) setupServer() *echo.Echo {
	systemHandler := system.NewHandler(s.deps.Dispatcher, s.deps.Record, s.buildInfo)
	dealHandler := deal.NewHandler(deal.Config{
		AppName:      config.AppName,
		Version:      s.buildInfo.Version,
		QueueTimeout: constants.DefaultTriggerQueueTimeout,
	}, s.deps.Trigger, s.deps.RunStatus, s.deps.Record, s.deps.Dispatcher)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:        s.appConfig.Debug,
		AllowOrigins: s.appConfig.HTTP.AllowOrigins,
		WriteTimeout: constants.DefaultWriteTimeout + constants.DefaultTriggerQueueTimeout + s.appConfig.Pipeline.RunTimeout,
	})

	RegisterRoutes(e, systemHandler, dealHandler)

	return e
}

// startHTTPServer HTTP 서버를 실행합니다. 서버가 종료되면 done 채널을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	port := s.appConfig.HTTP.ListenPort
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": port,
	}).Info(constants.LogMsgServiceHTTPServerStarting)

	s.handleServerError(e.Start(fmt.Sprintf(":%d", port)))
}

// handleServerError 서버 종료 원인을 기록합니다.
// Graceful Shutdown이 아닌 종료는 발송 채널로도 알립니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.HTTP.ListenPort,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)

	if s.deps.Dispatcher.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), fatalNoticeTimeout)
		defer cancel()

		_ = s.deps.Dispatcher.SendText(ctx, fmt.Sprintf("🚨 %s\n\n%s", constants.LogMsgServiceHTTPServerFatalError, err))
	}
}

// waitForShutdown 종료 신호를 기다린 뒤 Graceful Shutdown을 수행합니다.
// 서버가 먼저 종료된 경우(포트 바인딩 실패 등)에는 Shutdown 없이 상태만 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)
	case <-httpServerDone:
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)
		s.cleanup()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}

// Running 서비스 실행 여부를 반환합니다.
func (s *Service) Running() bool {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()
	return s.running
}
