package log

import "github.com/sirupsen/logrus"

// silentFormatter 기본 출력(io.Discard)으로 가는 로그의 포맷팅 비용을 없애기 위한 포맷터입니다.
// 실제 출력은 hook이 자신의 포맷터로 처리합니다.
type silentFormatter struct{}

func (f *silentFormatter) Format(_ *logrus.Entry) ([]byte, error) {
	return nil, nil
}
