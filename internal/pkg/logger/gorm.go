package logger

import (
	"context"
	"errors"
	log "log/slog"
	"strings"
	"time"

	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

const defaultSlowSQL = 200 * time.Millisecond

// GormLogger gorm 日志接到 slog；记录不存在不算错误，超过 SlowThreshold 记慢查询
type GormLogger struct {
	Level         gormlogger.LogLevel
	SlowThreshold time.Duration
}

func NewGormLogger(slowThreshold time.Duration) *GormLogger {
	if slowThreshold <= 0 {
		slowThreshold = defaultSlowSQL
	}
	return &GormLogger{Level: gormlogger.Warn, SlowThreshold: slowThreshold}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	next := *l
	next.Level = level
	return &next
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.Level >= gormlogger.Info {
		log.InfoContext(ctx, msg, "data", data)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.Level >= gormlogger.Warn {
		log.WarnContext(ctx, msg, "data", data)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.Level >= gormlogger.Error {
		log.ErrorContext(ctx, msg, "data", data)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.Level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	verb, _, _ := strings.Cut(strings.TrimSpace(sql), " ")
	fields := []any{
		log.String("sql", sql),
		log.Int64("rows", rows),
		log.Duration("latency", elapsed),
		log.String("source", utils.FileWithLineNum()),
	}

	switch {
	case err != nil && !errors.Is(err, gormlogger.ErrRecordNotFound):
		log.ErrorContext(ctx, "SQL "+verb+" Error", append(fields, log.Any("err", err))...)
	case elapsed > l.SlowThreshold:
		log.WarnContext(ctx, "SQL "+verb+" Slow", append(fields, log.Duration("threshold", l.SlowThreshold))...)
	case l.Level >= gormlogger.Info:
		log.InfoContext(ctx, "SQL "+verb, fields...)
	}
}
