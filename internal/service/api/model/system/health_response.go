package system

// HealthResponse 서버와 의존성의 상태 응답입니다.
type HealthResponse struct {
	// Status 전체 상태 (healthy, degraded, unhealthy)
	Status string `json:"status" example:"healthy"`

	// Uptime 서버 가동 시간(초)
	Uptime int64 `json:"uptime" example:"3600"`

	Dependencies map[string]DependencyStatus `json:"dependencies,omitempty"`
}
