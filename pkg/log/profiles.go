package log

// callerPathPrefix 호출 위치 출력 시 생략할 모듈 경로입니다.
const callerPathPrefix = "github.com/darkkaiser/deal-notifier"

// NewProductionOptions 운영 환경용 로깅 옵션을 반환합니다.
// 파일 중심으로 기록하며, 치명적 로그와 상세 로그를 별도 파일로 분리합니다.
func NewProductionOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: InfoLevel,

		MaxAge:     30,
		MaxSizeMB:  100,
		MaxBackups: 20,

		EnableCriticalLog: true,
		EnableVerboseLog:  true,
		EnableConsoleLog:  false,

		ReportCaller:     true,
		CallerPathPrefix: callerPathPrefix,
	}
}

// NewDevelopmentOptions 개발 환경용 로깅 옵션을 반환합니다.
func NewDevelopmentOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: TraceLevel,

		MaxAge:     1,
		MaxSizeMB:  50,
		MaxBackups: 5,

		EnableConsoleLog: true,

		ReportCaller:     true,
		CallerPathPrefix: callerPathPrefix,
	}
}
