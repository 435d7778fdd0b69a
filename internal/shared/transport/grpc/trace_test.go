package grpc

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"

	"Game2048/internal/shared/transport"
	"Game2048/modules/kit/tracex"
)

func TestTrace_注入与提取(t *testing.T) {
	ctx := tracex.WithSpanID(tracex.WithTraceID(context.Background(), "t-9"), "cli")
	out := injectTraceToOutgoing(ctx)
	md, ok := metadata.FromOutgoingContext(out)
	if !ok || md.Get(traceIDHeader)[0] != "t-9" {
		t.Fatalf("md=%v", md)
	}

	in := metadata.NewIncomingContext(context.Background(), md)
	got := extractTraceFromIncoming(in)
	if tid, _ := tracex.TraceIDFrom(got); tid != "t-9" {
		t.Fatalf("trace_id=%s", tid)
	}
	if sid, _ := tracex.SpanIDFrom(got); sid != "cli" {
		t.Fatalf("span_id=%s", sid)
	}
}

func TestBizCodeFromStatus(t *testing.T) {
	cases := map[codes.Code]int{
		codes.OK:                 transport.OK,
		codes.InvalidArgument:    transport.InvalidParam,
		codes.PermissionDenied:   transport.Forbidden,
		codes.NotFound:           transport.NotFound,
		codes.FailedPrecondition: transport.Conflict,
		codes.Unavailable:        transport.Unavailable,
		codes.Internal:           transport.SystemError,
	}
	for c, want := range cases {
		if got := BizCodeFromStatus(c); got != want {
			t.Fatalf("%v: got=%d want=%d", c, got, want)
		}
	}
}
