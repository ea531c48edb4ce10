// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// NewLogger creates a production zap logger at the given level. An invalid
// level falls back to error.
func NewLogger(level string) *Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.ErrorLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		panic(err.Error())
	}

	// Security events bypass the configured level so audit output is never
	// filtered out.
	securityCfg := zap.NewProductionConfig()
	securityCfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	securityCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	sl, err := securityCfg.Build()
	if err != nil {
		panic(err.Error())
	}

	return &Logger{
		SugaredLogger: l.Sugar(),
		security:      &SecurityLogger{l: sl.Named("security")},
	}
}
