package response

// ErrorResponse 모든 API 에러에 공통으로 사용하는 응답 본문입니다.
type ErrorResponse struct {
	// ResultCode HTTP 상태 코드
	ResultCode int `json:"result_code" example:"503"`

	Message string `json:"message" example:"진행 중인 실행이 아직 끝나지 않았습니다. 잠시 후 다시 시도해 주세요"`
}
