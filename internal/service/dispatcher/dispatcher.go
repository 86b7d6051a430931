// Package dispatcher 발송 채널에 상품 알림을 전달하는 Dispatcher 인터페이스를 정의합니다.
package dispatcher

import (
	"context"

	"github.com/darkkaiser/deal-notifier/internal/service/deal"
)

const component = "dispatcher"

// Dispatcher 후보 하나를 발송 채널로 전달합니다.
type Dispatcher interface {
	// Dispatch 후보를 발송하고 성공 여부를 반환합니다. 실패 원인은 구현체가 로그로 남깁니다.
	Dispatch(ctx context.Context, c deal.Candidate, caption string) bool

	// SendText 운영자용 텍스트 메시지(HTML)를 발송합니다.
	SendText(ctx context.Context, text string) error

	// Enabled 발송 채널 자격 증명이 설정되어 실제로 발송이 가능한지 여부입니다.
	Enabled() bool
}
