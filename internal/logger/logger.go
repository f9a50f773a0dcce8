package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var defaultLogger *zap.Logger

// JSON output in production, colored console output otherwise.
func init() {
	Init(os.Getenv("ENVIRONMENT"))
}

// Init rebuilds the process logger for the given environment.
func Init(environment string) {
	var cfg zap.Config
	if environment == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := cfg.Build()
	if err != nil {
		l = zap.NewNop()
	}
	defaultLogger = l
}

func L() *zap.Logger {
	return defaultLogger
}

func With(fields ...zap.Field) *zap.Logger {
	return defaultLogger.With(fields...)
}

func Debug(msg string, fields ...zap.Field) {
	defaultLogger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	defaultLogger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	defaultLogger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	defaultLogger.Error(msg, fields...)
}

// ErrorErr logs msg with err attached.
func ErrorErr(err error, msg string, fields ...zap.Field) {
	defaultLogger.Error(msg, append(fields, zap.Error(err))...)
}

// Fatal logs and exits; for cmd/ entrypoints only.
func Fatal(msg string, fields ...zap.Field) {
	defaultLogger.Fatal(msg, fields...)
}

func FatalErr(err error, msg string, fields ...zap.Field) {
	defaultLogger.Fatal(msg, append(fields, zap.Error(err))...)
}

// Sync flushes buffered entries.
func Sync() {
	_ = defaultLogger.Sync()
}
