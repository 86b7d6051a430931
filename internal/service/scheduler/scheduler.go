// Package scheduler 파이프라인 실행을 주기적으로, 또는 요청에 따라 즉시 시작합니다.
//
// 실행은 항상 하나만 진행됩니다. 주기 실행은 진행 중인 실행이 있으면 건너뛰고,
// 즉시 실행 요청은 진행 중인 실행이 끝날 때까지 대기합니다.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/darkkaiser/deal-notifier/internal/service/pipeline"
	"github.com/darkkaiser/deal-notifier/pkg/cronx"
	applog "github.com/darkkaiser/deal-notifier/pkg/log"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/semaphore"
)

const component = "scheduler"

const defaultRunTimeout = 10 * time.Minute

// Runner 한 번의 실행을 수행합니다.
type Runner interface {
	Run(ctx context.Context) pipeline.Report
}

// Config 스케줄러 설정입니다.
type Config struct {
	// Interval cron 표현식 또는 "@every 60m" 같은 디스크립터입니다.
	Interval string

	// RunOnStart 서비스 시작 직후 한 번 실행할지 여부입니다.
	RunOnStart bool

	// RunTimeout 한 번의 실행에 허용하는 최대 시간입니다.
	RunTimeout time.Duration
}

// Scheduler 실행 주기와 동시 실행 제한을 관리하는 서비스입니다.
type Scheduler struct {
	cfg    Config
	runner Runner

	// sem 동시에 하나의 실행만 허용합니다.
	sem *semaphore.Weighted

	cron *cron.Cron

	// runCtx 서비스가 중지되면 취소되어 진행 중인 실행의 발송 루프를 멈춥니다.
	runCtx    context.Context
	cancelRun context.CancelFunc
	runCtxMu  sync.RWMutex

	// startupRun 시작 직후 실행을 추적합니다.
	startupRun sync.WaitGroup

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 Scheduler 서비스 인스턴스를 생성합니다.
func NewService(cfg Config, runner Runner) *Scheduler {
	if runner == nil {
		panic("scheduler: Runner는 nil일 수 없습니다")
	}
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = defaultRunTimeout
	}

	runCtx, cancelRun := context.WithCancel(context.Background())

	return &Scheduler{
		cfg:       cfg,
		runner:    runner,
		sem:       semaphore.NewWeighted(1),
		runCtx:    runCtx,
		cancelRun: cancelRun,
	}
}

// Start 주기 실행을 등록하고 스케줄러를 시작합니다.
// serviceStopCtx가 취소되면 스케줄러를 중지한 뒤 serviceStopWG.Done()을 호출합니다.
func (s *Scheduler) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Scheduler 서비스 초기화 프로세스를 시작합니다")

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Scheduler 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	if err := cronx.Validate(s.cfg.Interval); err != nil {
		serviceStopWG.Done()
		return NewErrInvalidCronSpec(s.cfg.Interval, err)
	}

	s.runCtxMu.Lock()
	s.runCtx, s.cancelRun = context.WithCancel(context.Background())
	s.runCtxMu.Unlock()

	cronLogger := cron.VerbosePrintfLogger(applog.StandardLogger())
	s.cron = cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cronLogger),
		cron.WithChain(
			cron.Recover(cronLogger),
			cron.SkipIfStillRunning(cronLogger),
		),
	)
	if _, err := s.cron.AddFunc(s.cfg.Interval, s.tick); err != nil {
		s.cancelRunContext()
		serviceStopWG.Done()
		return NewErrInvalidCronSpec(s.cfg.Interval, err)
	}

	s.cron.Start()
	s.running = true

	if s.cfg.RunOnStart {
		s.startupRun.Add(1)
		go func() {
			defer s.startupRun.Done()
			s.tick()
		}()
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"interval":     s.cfg.Interval,
		"run_on_start": s.cfg.RunOnStart,
		"run_timeout":  s.cfg.RunTimeout.String(),
	}).Info("서비스 시작 완료: Scheduler 서비스가 정상적으로 초기화되었습니다")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.Stop()
	}()

	return nil
}

// Stop 진행 중인 실행을 취소하고, 모든 실행이 끝날 때까지 기다린 뒤 스케줄러를 중지합니다.
func (s *Scheduler) Stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: Scheduler 서비스 중지 시그널을 수신했습니다")

	s.cancelRunContext()

	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
	s.startupRun.Wait()

	s.cron = nil
	s.running = false

	applog.WithComponent(component).Info("Scheduler 서비스 종료 완료: 모든 리소스가 정리되었습니다")
}

func (s *Scheduler) cancelRunContext() {
	s.runCtxMu.RLock()
	defer s.runCtxMu.RUnlock()

	s.cancelRun()
}

// tick 주기 실행입니다. 진행 중인 실행이 있으면 건너뜁니다.
func (s *Scheduler) tick() {
	if !s.sem.TryAcquire(1) {
		applog.WithComponent(component).Info("이전 실행이 진행 중이어서 이번 주기 실행을 건너뜁니다")
		return
	}
	defer s.sem.Release(1)

	s.run()
}

// RunNow 즉시 한 번 실행하고 결과를 반환합니다.
//
// 진행 중인 실행이 있으면 끝날 때까지 대기하며, 대기 중 ctx가 만료되면 에러를 반환합니다.
// 실행이 시작된 뒤에는 ctx가 취소되어도 실행을 끝까지 진행합니다.
func (s *Scheduler) RunNow(ctx context.Context) (pipeline.Report, error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err.Error(),
		}).Warn("즉시 실행 요청이 대기 중 만료되었습니다")

		return pipeline.Report{}, NewErrRunQueueTimeout(err)
	}
	defer s.sem.Release(1)

	return s.run(), nil
}

func (s *Scheduler) run() pipeline.Report {
	s.runCtxMu.RLock()
	base := s.runCtx
	s.runCtxMu.RUnlock()

	ctx, cancel := context.WithTimeout(base, s.cfg.RunTimeout)
	defer cancel()

	return s.runner.Run(ctx)
}

// Interval 설정된 실행 주기 표현식입니다.
func (s *Scheduler) Interval() string {
	return s.cfg.Interval
}

// NextRun 다음 주기 실행 예정 시각입니다. 스케줄러가 실행 중이 아니면 제로 값을 반환합니다.
func (s *Scheduler) NextRun() time.Time {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if s.cron == nil {
		return time.Time{}
	}
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}
