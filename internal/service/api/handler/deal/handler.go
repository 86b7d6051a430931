// Package deal 상태 조회, 수동 실행, 테스트 메시지 발송 엔드포인트 핸들러를 제공합니다.
package deal

import (
	"context"
	"net/http"
	"time"

	"github.com/darkkaiser/deal-notifier/internal/service/api/constants"
	"github.com/darkkaiser/deal-notifier/internal/service/api/httputil"
	dealmodel "github.com/darkkaiser/deal-notifier/internal/service/api/model/deal"
	"github.com/darkkaiser/deal-notifier/internal/service/pipeline"
	applog "github.com/darkkaiser/deal-notifier/pkg/log"
	"github.com/labstack/echo/v4"
)

// Trigger 실행을 요청하고 실행 주기를 알려주는 스케줄러입니다.
type Trigger interface {
	RunNow(ctx context.Context) (pipeline.Report, error)
	Interval() string
	NextRun() time.Time
}

// RunStatus 현재 실행 단계와 마지막 실행 결과를 알려줍니다.
type RunStatus interface {
	State() pipeline.State
	LastReport() *pipeline.Report
	MaxPerRun() int
}

// RecordStatus 발송 이력의 크기와 저장 위치를 알려줍니다.
type RecordStatus interface {
	Len() int
	Describe() string
}

// Messenger 자유 형식 텍스트를 발송 채널로 보냅니다.
type Messenger interface {
	SendText(ctx context.Context, text string) error
	Enabled() bool
}

// Config 핸들러 동작 설정입니다. 0인 타임아웃에는 기본값이 적용됩니다.
type Config struct {
	AppName string
	Version string

	QueueTimeout       time.Duration
	TestMessageTimeout time.Duration
}

type Handler struct {
	cfg Config

	trigger   Trigger
	status    RunStatus
	record    RecordStatus
	messenger Messenger
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(cfg Config, trigger Trigger, status RunStatus, record RecordStatus, messenger Messenger) *Handler {
	if trigger == nil {
		panic(constants.PanicMsgTriggerRequired)
	}
	if status == nil {
		panic(constants.PanicMsgRunStatusRequired)
	}
	if record == nil {
		panic(constants.PanicMsgRecordRequired)
	}
	if messenger == nil {
		panic(constants.PanicMsgDispatcherRequired)
	}

	if cfg.QueueTimeout <= 0 {
		cfg.QueueTimeout = constants.DefaultTriggerQueueTimeout
	}
	if cfg.TestMessageTimeout <= 0 {
		cfg.TestMessageTimeout = constants.DefaultTestMessageTimeout
	}

	return &Handler{
		cfg:       cfg,
		trigger:   trigger,
		status:    status,
		record:    record,
		messenger: messenger,
	}
}

// StatusHandler godoc
// @Summary 서비스 상태 정보
// @Description 실행 주기, 실행당 발송 상한, 발송 이력 크기, 현재 실행 단계, 마지막 실행 결과를 반환합니다.
// @Tags Deal
// @Produce json
// @Success 200 {object} deal.StatusResponse "상태 정보"
// @Router / [get]
func (h *Handler) StatusHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgStatusInfo)

	resp := dealmodel.StatusResponse{
		AppName:           h.cfg.AppName,
		Version:           h.cfg.Version,
		Interval:          h.trigger.Interval(),
		MaxPerRun:         h.status.MaxPerRun(),
		RecordSize:        h.record.Len(),
		RecordStore:       h.record.Describe(),
		State:             h.status.State().String(),
		DispatcherEnabled: h.messenger.Enabled(),
	}
	if next := h.trigger.NextRun(); !next.IsZero() {
		resp.NextRun = &next
	}
	if last := h.status.LastReport(); last != nil {
		resp.LastReport = &dealmodel.ReportResponse{
			Considered: last.Considered,
			Delivered:  last.Delivered,
			Failed:     last.Failed,
			StartedAt:  last.StartedAt,
			FinishedAt: last.FinishedAt,
			DurationMs: last.Duration().Milliseconds(),
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// TriggerHandler godoc
// @Summary 즉시 실행
// @Description 수집부터 발송까지 한 번의 실행을 동기적으로 수행하고 요약을 반환합니다.
// @Description 진행 중인 실행이 있으면 끝날 때까지 대기하며, 대기 시간이 초과되면 503을 반환합니다.
// @Description 실행이 시작된 뒤에는 클라이언트 연결이 끊겨도 실행은 끝까지 진행됩니다.
// @Tags Deal
// @Produce json
// @Success 200 {object} deal.TriggerResponse "실행 요약"
// @Failure 429 {object} response.ErrorResponse "요청 빈도 초과"
// @Failure 503 {object} response.ErrorResponse "진행 중인 실행 대기 시간 초과"
// @Router /trigger [get]
// @Router /trigger [post]
func (h *Handler) TriggerHandler(c echo.Context) error {
	fields := applog.Fields{
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}
	applog.WithComponentAndFields(constants.ComponentHandler, fields).Info(constants.LogMsgTriggerRequested)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.cfg.QueueTimeout)
	defer cancel()

	report, err := h.trigger.RunNow(ctx)
	if err != nil {
		fields["error"] = err
		applog.WithComponentAndFields(constants.ComponentHandler, fields).Warn(constants.LogMsgTriggerQueueFailed)

		return httputil.NewServiceUnavailableError(constants.ErrMsgRunQueueTimeout)
	}

	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"considered": report.Considered,
		"delivered":  report.Delivered,
		"failed":     report.Failed,
		"duration":   report.Duration().String(),
	}).Info(constants.LogMsgTriggerCompleted)

	return c.JSON(http.StatusOK, dealmodel.TriggerResponse{
		Delivered:  report.Delivered,
		Failed:     report.Failed,
		Considered: report.Considered,
	})
}

// TestMessageHandler godoc
// @Summary 테스트 메시지 발송
// @Description 고정된 테스트 문구를 발송 채널로 보내 연결 상태를 확인합니다.
// @Tags Deal
// @Produce json
// @Success 200 {object} response.SuccessResponse "발송 성공"
// @Failure 502 {object} response.ErrorResponse "발송 실패"
// @Router /test [post]
func (h *Handler) TestMessageHandler(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.cfg.TestMessageTimeout)
	defer cancel()

	if err := h.messenger.SendText(ctx, constants.TestMessage); err != nil {
		applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
			"remote_ip": c.RealIP(),
			"error":     err,
		}).Warn(constants.LogMsgTestMessageFailed)

		return httputil.NewBadGatewayError(constants.ErrMsgTestMessageFailed)
	}

	applog.WithComponent(constants.ComponentHandler).Info(constants.LogMsgTestMessageSent)

	return httputil.Success(c, constants.MsgTestMessageSent)
}
