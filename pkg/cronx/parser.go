// Package cronx robfig/cron 파서 설정을 애플리케이션 전역에서 일관되게 사용하도록 제공합니다.
package cronx

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// StandardParser 초 단위 필드(6개 필드)와 "@every 1h" 같은 디스크립터를 모두 지원하는 파서를 반환합니다.
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// Validate 스케줄 표현식을 StandardParser로 파싱해 유효성을 검사합니다.
func Validate(spec string) error {
	if spec == "" {
		return fmt.Errorf("스케줄 표현식이 비어 있습니다")
	}
	if _, err := StandardParser().Parse(spec); err != nil {
		return fmt.Errorf("스케줄 표현식 파싱 실패 (%q): %w", spec, err)
	}
	return nil
}
