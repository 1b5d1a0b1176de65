package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	level, ok := parseLevel(" debug ")
	assert.True(t, ok)
	assert.Equal(t, zapcore.DebugLevel, level)

	_, ok = parseLevel(LevelNoop)
	assert.False(t, ok)

	_, ok = parseLevel("verbose")
	assert.False(t, ok)
}

func TestNew(t *testing.T) {
	defer New(LevelNoop)

	New(LevelWarn)
	assert.True(t, Sugar.Desugar().Core().Enabled(zapcore.WarnLevel))
	assert.False(t, Sugar.Desugar().Core().Enabled(zapcore.InfoLevel))

	New(LevelNoop)
	assert.False(t, Sugar.Desugar().Core().Enabled(zapcore.ErrorLevel))

	// usable without panicking in either state
	Sugar.WithServiceName("test").Infof("node count: %d", 3)
	OnExit()
}
