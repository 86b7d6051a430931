package deal

// TriggerResponse 수동 실행(/trigger) 결과 응답입니다.
type TriggerResponse struct {
	Delivered  int `json:"delivered_count" example:"3"`
	Failed     int `json:"failed_count" example:"0"`
	Considered int `json:"considered_count" example:"3"`
}
