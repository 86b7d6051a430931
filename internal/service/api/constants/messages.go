package constants

// 클라이언트에게 반환되는 메시지 상수입니다.
const (
	// 404 Not Found
	ErrMsgNotFound = "요청한 리소스를 찾을 수 없습니다"

	// 413 Request Entity Too Large
	ErrMsgRequestEntityTooLarge = "요청 본문이 너무 큽니다"

	// 429 Too Many Requests
	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"

	// 500 Internal Server Error
	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다"

	// 502 Bad Gateway
	ErrMsgTestMessageFailed = "테스트 메시지를 발송하지 못했습니다. 발송 채널 설정을 확인해 주세요"

	// 503 Service Unavailable
	ErrMsgRunQueueTimeout = "진행 중인 실행이 아직 끝나지 않았습니다. 잠시 후 다시 시도해 주세요"

	MsgSuccess         = "성공"
	MsgTestMessageSent = "테스트 메시지를 발송했습니다"

	// TestMessage POST /test 요청 시 발송 채널로 전송되는 고정 문구입니다.
	TestMessage = "✅ deal-notifier 테스트 메시지입니다. 발송 채널이 정상적으로 연결되었습니다."
)

// 서비스 생성 시 필수 의존성이 누락된 경우의 panic 메시지입니다.
const (
	PanicMsgAppConfigRequired  = "API: AppConfig는 필수입니다"
	PanicMsgTriggerRequired    = "API: 실행 트리거(Trigger)는 필수입니다"
	PanicMsgRunStatusRequired  = "API: 실행 상태 조회자(RunStatus)는 필수입니다"
	PanicMsgRecordRequired     = "API: 발송 이력(Record)은 필수입니다"
	PanicMsgDispatcherRequired = "API: 발송 채널(Dispatcher)은 필수입니다"
)
