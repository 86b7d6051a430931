// Package service 애플리케이션을 구성하는 장기 실행 서비스의 공통 계약을 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service main에서 시작하고 종료를 기다리는 장기 실행 서비스입니다.
//
// Start는 즉시 반환해야 하며, serviceStopCtx가 취소되면 정리 작업을 마친 뒤
// serviceStopWG.Done을 정확히 한 번 호출해야 합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
