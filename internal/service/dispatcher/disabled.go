package dispatcher

import (
	"context"

	"github.com/darkkaiser/deal-notifier/internal/service/deal"
	applog "github.com/darkkaiser/deal-notifier/pkg/log"
)

// disabledDispatcher 자격 증명이 없을 때 사용하는 Dispatcher입니다. 모든 발송이 실패로 처리됩니다.
type disabledDispatcher struct {
	reason string
}

var _ Dispatcher = (*disabledDispatcher)(nil)

// NewDisabled 항상 실패하는 Dispatcher를 생성합니다. reason은 로그에 기록됩니다.
func NewDisabled(reason string) Dispatcher {
	return &disabledDispatcher{reason: reason}
}

func (d *disabledDispatcher) Dispatch(_ context.Context, c deal.Candidate, _ string) bool {
	applog.WithComponentAndFields(component, applog.Fields{
		"title":  c.Title,
		"reason": d.reason,
	}).Warn("발송 채널이 비활성화되어 있어 발송하지 않았습니다")

	return false
}

func (d *disabledDispatcher) SendText(_ context.Context, _ string) error {
	return NewErrDisabled(d.reason)
}

func (d *disabledDispatcher) Enabled() bool {
	return false
}
