package link

import (
	"context"
)

// Shortener 긴 URL을 단축 URL로 변환합니다.
type Shortener interface {
	Shorten(ctx context.Context, longURL string) (string, error)
}

// nopShortener 단축 서비스 자격 증명이 없을 때 사용하며, 입력을 그대로 반환합니다.
type nopShortener struct{}

var _ Shortener = nopShortener{}

// NewNopShortener 입력 URL을 그대로 반환하는 Shortener를 생성합니다.
func NewNopShortener() Shortener {
	return nopShortener{}
}

func (nopShortener) Shorten(_ context.Context, longURL string) (string, error) {
	return longURL, nil
}
