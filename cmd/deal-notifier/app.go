package main

import (
	"context"
	"io"
	"time"

	"github.com/darkkaiser/deal-notifier/internal/config"
	"github.com/darkkaiser/deal-notifier/internal/pkg/version"
	"github.com/darkkaiser/deal-notifier/internal/service"
	"github.com/darkkaiser/deal-notifier/internal/service/api"
	"github.com/darkkaiser/deal-notifier/internal/service/dispatcher"
	"github.com/darkkaiser/deal-notifier/internal/service/dispatcher/telegram"
	"github.com/darkkaiser/deal-notifier/internal/service/fetcher"
	"github.com/darkkaiser/deal-notifier/internal/service/link"
	"github.com/darkkaiser/deal-notifier/internal/service/pipeline"
	"github.com/darkkaiser/deal-notifier/internal/service/record"
	"github.com/darkkaiser/deal-notifier/internal/service/scheduler"
	"github.com/darkkaiser/deal-notifier/internal/service/source"
	applog "github.com/darkkaiser/deal-notifier/pkg/log"
)

const (
	component = "main"

	// recordLoadTimeout 시작 시 발송 이력을 읽는 데 허용하는 최대 시간
	recordLoadTimeout = 30 * time.Second
)

// application 설정으로부터 조립된 서비스와 종료 시 닫아야 할 자원입니다.
type application struct {
	services []service.Service
	closers  []io.Closer

	scheduler    *scheduler.Scheduler
	orchestrator *pipeline.Orchestrator
	deduplicator *record.Deduplicator
	dispatcher   dispatcher.Dispatcher
}

// Close 보유한 자원을 역순으로 닫습니다.
func (a *application) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// newApplication 설정에 따라 수집부터 발송, 트리거 서버까지의 구성 요소를 조립합니다.
//
// 발송 채널 생성에 실패해도 프로세스는 계속 동작하며, 모든 발송이 실패로 집계됩니다.
// 발송 이력을 읽지 못한 경우에도 빈 이력으로 시작합니다.
func newApplication(ctx context.Context, appConfig *config.AppConfig, buildInfo version.Info) (*application, error) {
	app := &application{}

	f := fetcher.New(fetcher.Config{
		Timeout:   appConfig.Fetch.Timeout,
		UserAgent: appConfig.Fetch.UserAgent,
		MaxBytes:  appConfig.Fetch.MaxBytes,
	})

	sources, err := source.NewAll(appConfig.Sources, f)
	if err != nil {
		return nil, err
	}

	rewriter := link.NewRewriter(appConfig.Referral.Param, appConfig.Referral.ID)
	shortener := link.NewShortener(link.ShortenerConfig{
		Endpoint:        appConfig.Shortener.Endpoint,
		Token:           appConfig.Shortener.Token,
		Timeout:         appConfig.Shortener.Timeout,
		UserAgent:       appConfig.Fetch.UserAgent,
		MemcacheServers: appConfig.Shortener.MemcacheServers,
		CacheTTL:        appConfig.Shortener.CacheTTL,
	})

	app.dispatcher = newDispatcher(appConfig)

	store, err := newRecordStore(ctx, appConfig, app)
	if err != nil {
		return nil, err
	}

	app.deduplicator = record.NewDeduplicator(store)
	loadCtx, cancel := context.WithTimeout(ctx, recordLoadTimeout)
	app.deduplicator.Load(loadCtx)
	cancel()

	app.orchestrator = pipeline.New(pipeline.Config{
		MaxPerRun:     appConfig.Pipeline.MaxPerRun,
		SourceTimeout: appConfig.Pipeline.SourceTimeout,
	}, sources, app.deduplicator, rewriter, shortener, app.dispatcher)

	app.scheduler = scheduler.NewService(scheduler.Config{
		Interval:   appConfig.Pipeline.Interval,
		RunOnStart: appConfig.Pipeline.RunOnStart,
		RunTimeout: appConfig.Pipeline.RunTimeout,
	}, app.orchestrator)

	apiService := api.NewService(appConfig, api.Dependencies{
		Trigger:    app.scheduler,
		RunStatus:  app.orchestrator,
		Record:     app.deduplicator,
		Dispatcher: app.dispatcher,
	}, buildInfo)

	app.services = []service.Service{app.scheduler, apiService}

	applog.WithComponentAndFields(component, applog.Fields{
		"sources":        len(sources),
		"record_store":   store.Describe(),
		"record_size":    app.deduplicator.Len(),
		"dispatcher":     app.dispatcher.Enabled(),
		"interval":       appConfig.Pipeline.Interval,
		"max_per_run":    appConfig.Pipeline.MaxPerRun,
		"referral_param": appConfig.Referral.Param,
	}).Info("구성 요소 조립 완료")

	return app, nil
}

// newDispatcher 텔레그램 발송 채널을 만듭니다. 실패하면 모든 발송을 거부하는 채널로 대체합니다.
func newDispatcher(appConfig *config.AppConfig) dispatcher.Dispatcher {
	d, err := telegram.New(telegram.Config{
		BotToken:     appConfig.Telegram.BotToken,
		ChatID:       appConfig.Telegram.ChatID,
		RequestDelay: appConfig.Telegram.RequestDelay,
		Timeout:      appConfig.Telegram.Timeout,
		Debug:        appConfig.Debug,
	})
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Error("텔레그램 발송 채널을 초기화하지 못했습니다. 모든 발송이 실패로 집계됩니다")

		return dispatcher.NewDisabled(err.Error())
	}
	return d
}

// newRecordStore 설정된 백엔드의 발송 이력 저장소를 만듭니다.
// Redis 연결 확인에 실패해도 저장소는 반환하며, 이후 이력 로드 실패로 처리됩니다.
func newRecordStore(ctx context.Context, appConfig *config.AppConfig, app *application) (record.Store, error) {
	if appConfig.Record.Backend != config.RecordBackendRedis {
		return record.NewFileStore(appConfig.Record.Dir, config.AppName)
	}

	store := record.NewRedisStore(record.RedisOptions{
		Addr:     appConfig.Record.Redis.Addr,
		Password: appConfig.Record.Redis.Password,
		DB:       appConfig.Record.Redis.DB,
		Key:      appConfig.Record.Redis.Key,
	})
	app.closers = append(app.closers, store)

	pingCtx, cancel := context.WithTimeout(ctx, recordLoadTimeout)
	defer cancel()

	if err := store.Ping(pingCtx); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"store": store.Describe(),
			"error": err,
		}).Error("Redis 발송 이력 저장소에 연결하지 못했습니다")
	}

	return store, nil
}
