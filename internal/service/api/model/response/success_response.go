package response

// SuccessResponse 별도 데이터가 없는 요청의 성공 응답입니다.
type SuccessResponse struct {
	ResultCode int `json:"result_code" example:"0"`

	Message string `json:"message,omitempty" example:"테스트 메시지를 발송했습니다"`
}
