package middleware

import (
	"io"

	applog "github.com/darkkaiser/deal-notifier/pkg/log"
	"github.com/labstack/gommon/log"
)

// componentEcho Echo 프레임워크 내부 로그의 컴포넌트 이름
const componentEcho = "api.echo"

// EchoLogger Echo의 gommon log.Logger 인터페이스를 애플리케이션 로거에 연결하는 어댑터입니다.
//
// Echo 내부에서 남기는 로그도 "component=api.echo" 필드와 함께 같은 출력 대상으로 기록됩니다.
// Prefix/Header 기능은 사용하지 않습니다.
type EchoLogger struct {
	entry *applog.Entry
}

// NewEchoLogger 주어진 로거를 사용하는 EchoLogger를 반환합니다.
func NewEchoLogger(l *applog.Logger) EchoLogger {
	return EchoLogger{entry: applog.NewEntry(l).WithField("component", componentEcho)}
}

func (l EchoLogger) Output() io.Writer     { return l.entry.Logger.Out }
func (l EchoLogger) SetOutput(w io.Writer) { l.entry.Logger.SetOutput(w) }
func (l EchoLogger) Prefix() string        { return "" }
func (l EchoLogger) SetPrefix(string)      {}
func (l EchoLogger) SetHeader(string)      {}

// Level 애플리케이션 로그 레벨을 Echo 로그 레벨로 변환합니다.
// Echo에 대응하는 레벨이 없는 Trace/Fatal/Panic은 OFF로 취급합니다.
func (l EchoLogger) Level() log.Lvl {
	switch l.entry.Logger.GetLevel() {
	case applog.DebugLevel:
		return log.DEBUG
	case applog.InfoLevel:
		return log.INFO
	case applog.WarnLevel:
		return log.WARN
	case applog.ErrorLevel:
		return log.ERROR
	default:
		return log.OFF
	}
}

// SetLevel Echo 로그 레벨을 애플리케이션 로그 레벨로 변환해 적용합니다. OFF는 무시합니다.
func (l EchoLogger) SetLevel(lvl log.Lvl) {
	levels := map[log.Lvl]applog.Level{
		log.DEBUG: applog.DebugLevel,
		log.INFO:  applog.InfoLevel,
		log.WARN:  applog.WarnLevel,
		log.ERROR: applog.ErrorLevel,
	}
	if level, ok := levels[lvl]; ok {
		l.entry.Logger.SetLevel(level)
	}
}

func (l EchoLogger) Print(i ...any)                 { l.entry.Print(i...) }
func (l EchoLogger) Printf(format string, a ...any) { l.entry.Printf(format, a...) }
func (l EchoLogger) Printj(j log.JSON)              { l.entry.WithFields(applog.Fields(j)).Print() }

func (l EchoLogger) Debug(i ...any)                 { l.entry.Debug(i...) }
func (l EchoLogger) Debugf(format string, a ...any) { l.entry.Debugf(format, a...) }
func (l EchoLogger) Debugj(j log.JSON)              { l.entry.WithFields(applog.Fields(j)).Debug() }

func (l EchoLogger) Info(i ...any)                 { l.entry.Info(i...) }
func (l EchoLogger) Infof(format string, a ...any) { l.entry.Infof(format, a...) }
func (l EchoLogger) Infoj(j log.JSON)              { l.entry.WithFields(applog.Fields(j)).Info() }

func (l EchoLogger) Warn(i ...any)                 { l.entry.Warn(i...) }
func (l EchoLogger) Warnf(format string, a ...any) { l.entry.Warnf(format, a...) }
func (l EchoLogger) Warnj(j log.JSON)              { l.entry.WithFields(applog.Fields(j)).Warn() }

func (l EchoLogger) Error(i ...any)                 { l.entry.Error(i...) }
func (l EchoLogger) Errorf(format string, a ...any) { l.entry.Errorf(format, a...) }
func (l EchoLogger) Errorj(j log.JSON)              { l.entry.WithFields(applog.Fields(j)).Error() }

func (l EchoLogger) Fatal(i ...any)                 { l.entry.Fatal(i...) }
func (l EchoLogger) Fatalf(format string, a ...any) { l.entry.Fatalf(format, a...) }
func (l EchoLogger) Fatalj(j log.JSON)              { l.entry.WithFields(applog.Fields(j)).Fatal() }

func (l EchoLogger) Panic(i ...any)                 { l.entry.Panic(i...) }
func (l EchoLogger) Panicf(format string, a ...any) { l.entry.Panicf(format, a...) }
func (l EchoLogger) Panicj(j log.JSON)              { l.entry.WithFields(applog.Fields(j)).Panic() }
