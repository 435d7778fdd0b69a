package transport

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"Game2048/modules/kit/logx"
	"Game2048/modules/kit/tracex"
)

func TestNewContextWithParent_保留已有trace(t *testing.T) {
	parent := tracex.WithTraceID(context.Background(), "t-keep")
	ctx := NewContextWithParent(parent, "GET /x", "http")
	if got, _ := tracex.TraceIDFrom(ctx); got != "t-keep" {
		t.Fatalf("trace_id=%s", got)
	}
	if got, _ := tracex.SpanIDFrom(ctx); got != "http" {
		t.Fatalf("span_id=%s", got)
	}
	if FromContext(ctx) == nil {
		t.Fatalf("缺少 AccessLog")
	}
}

func TestWriteAccessLog_按业务码分级(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logx.NewZapLogger(zap.New(core))

	ok := NewContext("WS game.state", "ws")
	SetBizCode(ok, BizCode(OK))
	WriteAccessLog(ok, l)

	bad := NewContext("WS game.move", "ws")
	SetBizCode(bad, BizCode(Forbidden))
	SetErrorReason(bad, "TOKEN_INVALID")
	WriteAccessLog(bad, l)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("entries=%d", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel || entries[1].Level != zapcore.WarnLevel {
		t.Fatalf("levels=%v,%v", entries[0].Level, entries[1].Level)
	}
	if entries[1].ContextMap()["error_reason"] != "TOKEN_INVALID" {
		t.Fatalf("fields=%v", entries[1].ContextMap())
	}
}
