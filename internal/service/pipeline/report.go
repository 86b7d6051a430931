package pipeline

import "time"

// Report 한 번의 실행 결과입니다. 영속되지 않습니다.
type Report struct {
	// Considered 순위 산정과 상한 적용을 거쳐 발송 대상이 된 후보 수입니다.
	Considered int `json:"considered_count"`
	Delivered  int `json:"delivered_count"`
	Failed     int `json:"failed_count"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Duration 실행에 걸린 시간입니다.
func (r Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
