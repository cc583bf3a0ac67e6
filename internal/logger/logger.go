package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// level is shared by every package logger so that --debug applies everywhere,
// including loggers created from package init functions.
var level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

type Logger struct {
	*zap.Logger
}

func (l *Logger) init() error {
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = level
	zapConfig.Encoding = "console"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zapConfig.DisableStacktrace = true

	var err error
	l.Logger, err = zapConfig.Build()
	return err
}

// New takes in a package to initialize the new Logger in.
func New(pkg string) *Logger {
	Log := &Logger{}
	if err := Log.init(); err != nil {
		panic(err)
	}

	Log.Logger = Log.Logger.With(
		zap.String("package", pkg),
	)

	return Log
}

// SetDebug switches all package loggers between debug and info level.
func SetDebug(debug bool) {
	if debug {
		level.SetLevel(zapcore.DebugLevel)
		return
	}
	level.SetLevel(zapcore.InfoLevel)
}
