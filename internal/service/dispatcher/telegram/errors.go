package telegram

import (
	apperrors "github.com/darkkaiser/deal-notifier/internal/pkg/errors"
)

// NewErrInvalidBotToken 텔레그램 봇 API 클라이언트 초기화 실패(주로 토큰 오류) 시 반환되는 에러를 생성합니다.
func NewErrInvalidBotToken(err error) error {
	return apperrors.Wrap(err, apperrors.InvalidInput, "텔레그램 봇 API 클라이언트 초기화에 실패했습니다. bot_token이 올바른지 확인해주세요")
}
