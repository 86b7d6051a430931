package errors

//go:generate stringer -type=ErrorType

// ErrorType 에러를 분류하는 종류 값입니다.
// 로그 필드와 HTTP 응답 코드 매핑의 기준이 됩니다.
type ErrorType int

const (
	// Unknown 분류되지 않은 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그, 잘못된 호출 등)
	Internal

	// System 디스크, 네트워크 등 실행 환경 오류
	System

	// Unauthorized 외부 서비스 인증 실패 (잘못된 토큰 등)
	Unauthorized

	// InvalidInput 설정값이나 요청값이 유효하지 않음
	InvalidInput

	// Conflict 이미 진행 중인 작업과의 충돌
	Conflict

	// NotFound 대상 리소스 없음
	NotFound

	// ExecutionFailed 외부 호출이나 작업 수행 실패
	ExecutionFailed

	// ParsingFailed 응답 데이터 해석 실패
	ParsingFailed

	// Timeout 제한 시간 초과
	Timeout

	// Unavailable 일시적으로 사용할 수 없음 (5xx, 429 등)
	Unavailable
)
