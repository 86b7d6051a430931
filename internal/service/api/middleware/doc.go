// Package middleware 트리거/상태 조회 HTTP 서버에서 사용하는 Echo 미들웨어를 제공합니다.
//
//   - PanicRecovery: 핸들러 panic 복구 및 스택 트레이스 기록
//   - HTTPLogger: 요청/응답 구조화 로그 (민감한 쿼리 파라미터 마스킹)
//   - RateLimit: IP별 요청 속도 제한
//   - EchoLogger: Echo 내부 로그를 애플리케이션 로거로 연결
package middleware
