package db

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Logger routes gorm's logging through zap.
type Logger struct {
	zap   *zap.Logger
	level gormlogger.LogLevel
}

func NewLogger(l *zap.Logger, level gormlogger.LogLevel) Logger {
	return Logger{zap: l, level: level}
}

func (l Logger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	l.level = level
	return l
}

func (l Logger) Info(_ context.Context, s string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		l.zap.Sugar().Infof(s, args...)
	}
}

func (l Logger) Warn(_ context.Context, s string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.zap.Sugar().Warnf(s, args...)
	}
}

func (l Logger) Error(_ context.Context, s string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		l.zap.Sugar().Errorf(s, args...)
	}
}

func (l Logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == gormlogger.Silent {
		return
	}
	sql, rows := fc()
	dur := time.Since(begin)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		l.zap.Error("gorm query error",
			zap.Duration("duration", dur),
			zap.Int64("rows", rows),
			zap.String("sql", sql),
			zap.Error(err),
		)
		return
	}
	l.zap.Debug("gorm query",
		zap.Duration("duration", dur),
		zap.Int64("rows", rows),
		zap.String("sql", sql),
	)
}
