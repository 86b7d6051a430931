package constants

const (
	HealthStatusHealthy   = "healthy"
	HealthStatusDegraded  = "degraded"
	HealthStatusUnhealthy = "unhealthy"

	// DependencyDispatcher 알림 발송 채널(Telegram) 의존성 이름
	DependencyDispatcher = "dispatcher"

	// DependencyRecordStore 발송 이력 저장소 의존성 이름
	DependencyRecordStore = "record_store"

	MsgDepStatusHealthy          = "정상 작동 중"
	MsgDepStatusDispatcherOff    = "발송 채널 자격 증명이 설정되지 않았습니다"
	MsgDepStatusRecordLoadFailed = "발송 이력을 불러오지 못해 빈 이력으로 동작 중입니다"
)
