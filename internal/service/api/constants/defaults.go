package constants

import "time"

// HTTP 서버 기본값
const (
	DefaultReadTimeout       = 10 * time.Second
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultIdleTimeout       = 120 * time.Second

	// DefaultWriteTimeout 실행 대기/실행 시간을 더하기 전의 기본 응답 쓰기 제한입니다.
	DefaultWriteTimeout = 30 * time.Second

	DefaultMaxBodySize = "64K"

	DefaultRateLimitPerSecond = 5
	DefaultRateLimitBurst     = 10

	// DefaultTriggerQueueTimeout 수동 실행 요청이 진행 중인 실행을 기다리는 최대 시간입니다.
	DefaultTriggerQueueTimeout = 2 * time.Minute

	// DefaultTestMessageTimeout 테스트 메시지 발송 요청의 최대 처리 시간입니다.
	DefaultTestMessageTimeout = 30 * time.Second
)
