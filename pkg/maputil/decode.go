// Package maputil map[string]any 형태의 비정형 데이터를 구조체로 변환하는 기능을 제공합니다.
package maputil

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

type decodingConfig struct {
	tagName          string
	weaklyTypedInput bool
	errorUnused      bool
	extraHooks       []mapstructure.DecodeHookFunc
}

// Option 디코딩 동작을 조정하는 함수형 옵션입니다.
type Option func(*decodingConfig)

// WithErrorUnused 구조체에 없는 키가 입력에 있으면 에러로 처리합니다. (기본값: false)
func WithErrorUnused(enable bool) Option {
	return func(c *decodingConfig) {
		c.errorUnused = enable
	}
}

// WithTagName 필드 매핑에 사용할 구조체 태그를 지정합니다. (기본값: "json")
func WithTagName(tagName string) Option {
	return func(c *decodingConfig) {
		c.tagName = tagName
	}
}

// WithDecodeHook 기본 훅보다 먼저 실행될 변환 훅을 추가합니다.
func WithDecodeHook(hooks ...mapstructure.DecodeHookFunc) Option {
	return func(c *decodingConfig) {
		c.extraHooks = append(c.extraHooks, hooks...)
	}
}

// Decode 입력 데이터를 T 타입 구조체로 변환합니다.
//
// 기본 동작:
//   - `json` 태그 기준 매핑
//   - 약한 타입 변환 ("12" -> 12, "true" -> true)
//   - "10s" 같은 문자열을 time.Duration으로 변환
//   - "a,b" 문자열을 []string으로 변환
//
// 입력이 nil이면 제로 값 구조체를 반환합니다.
func Decode[T any](input any, opts ...Option) (*T, error) {
	output := new(T)
	if err := DecodeTo(input, output, opts...); err != nil {
		return nil, err
	}
	return output, nil
}

// DecodeTo 입력 데이터를 이미 존재하는 구조체에 병합하여 채웁니다.
// output에 미리 설정된 값은 입력에 해당 키가 없으면 그대로 유지됩니다.
func DecodeTo[T any](input any, output *T, opts ...Option) error {
	if output == nil {
		return errors.New("디코딩 결과를 저장할 output 포인터가 nil입니다")
	}

	cfg := &decodingConfig{
		tagName:          "json",
		weaklyTypedInput: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	hooks := append([]mapstructure.DecodeHookFunc{}, cfg.extraHooks...)
	hooks = append(hooks,
		mapstructure.StringToTimeDurationHookFunc(),
		stringToSliceHookFunc(),
	)

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          cfg.tagName,
		WeaklyTypedInput: cfg.weaklyTypedInput,
		ErrorUnused:      cfg.errorUnused,
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(hooks...),
		Result:           output,
	})
	if err != nil {
		return fmt.Errorf("디코더 생성 실패: %w", err)
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("데이터 디코딩 실패: %w", err)
	}

	return nil
}
