package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	l := New("logger")
	assert.NotNil(t, l.Logger)
}

func TestSetDebug(t *testing.T) {
	defer SetDebug(false)

	l := New("logger")

	SetDebug(true)
	assert.NotNil(t, l.Check(zapcore.DebugLevel, "debug message"), "debug entries should be written once debug is on")

	SetDebug(false)
	assert.Nil(t, l.Check(zapcore.DebugLevel, "debug message"))
}
