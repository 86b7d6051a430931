package deal

import "time"

// StatusResponse GET / 상태 조회 응답입니다.
type StatusResponse struct {
	AppName string `json:"app_name" example:"deal-notifier"`
	Version string `json:"version" example:"v1.2.0"`

	// Interval 자동 실행 주기 (cron 표현식 또는 @every 디스크립터)
	Interval string `json:"interval" example:"@every 1h"`

	// NextRun 다음 자동 실행 예정 시각. 스케줄러가 동작 중이 아니면 생략됩니다.
	NextRun *time.Time `json:"next_run,omitempty"`

	MaxPerRun int `json:"max_per_run" example:"25"`

	// RecordSize 지금까지 발송이 기록된 상품 수
	RecordSize  int    `json:"record_size" example:"1204"`
	RecordStore string `json:"record_store" example:"file:/var/lib/deal-notifier/deal-notifier-delivered.json"`

	// State 현재 실행 단계 (idle, collecting, deduplicating, ranking, delivering)
	State string `json:"state" example:"idle"`

	DispatcherEnabled bool `json:"dispatcher_enabled" example:"true"`

	LastReport *ReportResponse `json:"last_report,omitempty"`
}

// ReportResponse 한 번의 실행 결과 요약입니다.
type ReportResponse struct {
	Considered int       `json:"considered_count" example:"25"`
	Delivered  int       `json:"delivered_count" example:"24"`
	Failed     int       `json:"failed_count" example:"1"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	DurationMs int64     `json:"duration_ms" example:"15230"`
}
