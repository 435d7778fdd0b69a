package logs

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	glogger "gorm.io/gorm/logger"

	"Game2048/internal/shared/config"
	"Game2048/modules/kit/tracex"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger
	logger = zap.New(core)
	t.Cleanup(func() { logger = prev })
	return logs
}

func TestSetLevel_热更新级别(t *testing.T) {
	if err := Init("test", config.LogConfig{Level: "warn"}); err != nil {
		t.Fatalf("Init err=%v", err)
	}
	if Level() != zapcore.WarnLevel {
		t.Fatalf("level=%v", Level())
	}
	SetLevel("debug")
	if Level() != zapcore.DebugLevel {
		t.Fatalf("level=%v", Level())
	}
	SetLevel("nonsense")
	if Level() != zapcore.InfoLevel {
		t.Fatalf("非法级别应回退到 info, got=%v", Level())
	}
}

func TestGormLogger_错误与慢查询(t *testing.T) {
	logs := observe(t)
	gl := NewGormLogger(glogger.Warn, 10*time.Millisecond)
	ctx := tracex.WithTraceID(context.Background(), "t-1")
	sql := func() (string, int64) { return "SELECT 1", 1 }

	gl.Trace(ctx, time.Now(), sql, errors.New("bad conn"))
	gl.Trace(ctx, time.Now().Add(-time.Second), sql, nil)
	gl.Trace(ctx, time.Now(), sql, glogger.ErrRecordNotFound)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("entries=%d", len(entries))
	}
	if entries[0].Level != zapcore.ErrorLevel || entries[1].Level != zapcore.WarnLevel {
		t.Fatalf("levels=%v,%v", entries[0].Level, entries[1].Level)
	}
	if entries[0].ContextMap()["trace_id"] != "t-1" {
		t.Fatalf("缺少 trace_id: %v", entries[0].ContextMap())
	}
}

func TestGormLogger_Silent不输出(t *testing.T) {
	logs := observe(t)
	gl := NewGormLogger(glogger.Warn, 0).LogMode(glogger.Silent)
	gl.Trace(context.Background(), time.Now(), func() (string, int64) { return "", 0 }, errors.New("x"))
	if logs.Len() != 0 {
		t.Fatalf("Silent 不应输出, got=%d", logs.Len())
	}
}
