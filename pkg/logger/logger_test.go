package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.InfoLevel, parseLevel("info"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.DebugLevel, parseLevel("nonsense"))
}

func TestNopLoggerWith(t *testing.T) {
	log := NewNop().With(String("store", "orders"))
	assert.NotPanics(t, func() {
		log.Info("created", Int("items", 2))
		log.Warning("warn")
		log.Debug("debug")
		log.Error("err")
	})
}
