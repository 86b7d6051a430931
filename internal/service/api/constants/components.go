package constants

// 로깅에 사용하는 API 계층 컴포넌트 이름입니다.
const (
	ComponentService = "api.service"

	ComponentHandler = "api.handler"

	ComponentMiddlewareRateLimit = "api.middleware.rate_limit"

	ComponentMiddlewarePanicRecovery = "api.middleware.panic_recovery"

	ComponentErrorHandler = "api.error_handler"
)
