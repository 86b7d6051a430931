package system

// DependencyStatus 개별 의존성의 상태입니다.
type DependencyStatus struct {
	Status string `json:"status" example:"healthy"`

	Message string `json:"message,omitempty" example:"정상 작동 중"`
}
