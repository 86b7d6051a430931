package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/deal-notifier/internal/config"
	"github.com/darkkaiser/deal-notifier/internal/pkg/version"
	applog "github.com/darkkaiser/deal-notifier/pkg/log"
	"github.com/joho/godotenv"
)

// @title deal-notifier API
// @version 1.0.0
// @description 할인 상품을 수집해 텔레그램으로 발송하는 deal-notifier의 상태 조회/수동 실행 API입니다.
// @description
// @description ## 주요 기능
// @description - 서비스 상태 및 마지막 실행 결과 조회
// @description - 즉시 실행 (진행 중인 실행이 있으면 대기)
// @description - 발송 채널 테스트 메시지
// @BasePath /

const banner = `
     _            _                 _   _  __ _
  __| | ___  __ _| |      _ __   ___ | |_(_)/ _(_) ___ _ __
 / _' |/ _ \/ _' | |_____| '_ \ / _ \| __| | |_| |/ _ \ '__|
| (_| |  __/ (_| | |_____| | | | (_) | |_| |  _| |  __/ |
 \__,_|\___|\__,_|_|     |_| |_|\___/ \__|_|_| |_|\___|_|   %s
--------------------------------------------------------------------------------
`

func main() {
	configFile := flag.String("config", config.DefaultFilename, "설정 파일 경로")
	flag.Parse()

	// .env 파일은 선택 사항이다. 없으면 프로세스 환경 변수만 사용한다.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "[WARN] .env 파일을 읽지 못했습니다: %v\n", err)
	}

	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.LoadWithFile(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	logOpts := applog.NewProductionOptions(config.AppName)
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	}
	logCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()
	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields(component, applog.Fields{
		"version": buildInfo.String(),
		"config":  *configFile,
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent(component).Warn(warning)
	}

	if err := run(appConfig, buildInfo); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Error("서버 실행 실패")

		logCloser.Close()
		os.Exit(1)
	}
}

// run 구성 요소를 조립해 서비스를 시작하고, 종료 신호를 받으면 모든 서비스가 멈출 때까지 기다립니다.
func run(appConfig *config.AppConfig, buildInfo version.Info) error {
	signalCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(signalCtx, appConfig, buildInfo)
	if err != nil {
		return err
	}
	defer app.Close()

	serviceStopCtx, cancel := context.WithCancel(signalCtx)
	defer cancel()
	serviceStopWG := &sync.WaitGroup{}

	for _, s := range app.services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			cancel()
			serviceStopWG.Wait()
			return err
		}
	}

	applog.WithComponent(component).Info("서버 가동 완료")

	<-serviceStopCtx.Done()

	applog.WithComponent(component).Info("종료 신호를 수신했습니다")
	serviceStopWG.Wait()

	return nil
}
