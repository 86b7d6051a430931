// Package log logrus 기반의 애플리케이션 로깅 기능을 제공합니다.
//
// Setup으로 파일 로테이션(lumberjack)과 레벨별 분리 기록을 초기화한 뒤,
// 각 패키지는 WithComponent / WithComponentAndFields로 컴포넌트 이름이 포함된 엔트리를 만들어 기록합니다.
package log

import (
	"maps"

	"github.com/sirupsen/logrus"
)

// WithComponent "component" 필드가 설정된 로그 엔트리를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields "component" 필드와 추가 필드가 설정된 로그 엔트리를 반환합니다.
// 전달된 fields 맵은 변경하지 않습니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	maps.Copy(merged, fields)
	merged["component"] = component

	return logrus.WithFields(merged)
}

// WithFields 컴포넌트 구분 없이 필드만 설정된 로그 엔트리를 반환합니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// StandardLogger 전역 logrus Logger를 반환합니다.
// cron, echo 등 외부 라이브러리에 로거를 주입할 때 사용합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// NewEntry 주어진 Logger에 기록하는 빈 로그 엔트리를 반환합니다.
func NewEntry(l *Logger) *Entry {
	return logrus.NewEntry(l)
}

// SetDebugMode 디버그 모드 여부에 따라 전역 로그 레벨을 변경합니다.
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}
