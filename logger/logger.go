// Package logger holds the process wide structured logger.
//
// Library code logs through Sugar, which discards everything until New is
// called, so decoding a save from a test or another program stays quiet.
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LevelNoop  = "NOOP"
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

type Logger struct {
	*zap.SugaredLogger
}

var Sugar = &Logger{SugaredLogger: zap.NewNop().Sugar()}

// New replaces Sugar with a console logger writing to stderr at the given
// level. NOOP, or an unknown level, keeps logging disabled.
func New(level string) {
	zapLevel, ok := parseLevel(level)
	if !ok {
		Sugar = &Logger{SugaredLogger: zap.NewNop().Sugar()}
		return
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.OutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		Sugar = &Logger{SugaredLogger: zap.NewNop().Sugar()}
		return
	}
	Sugar = &Logger{SugaredLogger: l.Sugar()}
}

// OnExit flushes buffered entries. Call it with defer right after New.
func OnExit() {
	_ = Sugar.Sync()
}

// WithServiceName returns a child logger tagged with the component name.
func (l *Logger) WithServiceName(name string) *Logger {
	return &Logger{SugaredLogger: l.With("service", name)}
}

func parseLevel(level string) (zapcore.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case LevelDebug:
		return zapcore.DebugLevel, true
	case LevelInfo:
		return zapcore.InfoLevel, true
	case LevelWarn:
		return zapcore.WarnLevel, true
	case LevelError:
		return zapcore.ErrorLevel, true
	default:
		return zapcore.InvalidLevel, false
	}
}
