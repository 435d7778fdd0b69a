package ws

import (
	"context"
	"testing"

	"Game2048/internal/shared/transport"
)

func newReq(name string, msg any) (*WsMsgReq, *WsMsgResp) {
	return &WsMsgReq{Body: &ReqBody{Seq: 7, Name: name, Msg: msg}},
		&WsMsgResp{Body: &RespBody{Seq: 7, Name: name}}
}

func TestRouter_分发到处理器(t *testing.T) {
	r := NewRouter(nil)
	r.Group("game").Handle("state", func(ctx context.Context, req *WsMsgReq, resp *WsMsgResp) {
		resp.Body.Code = transport.OK
		resp.Body.Msg = "ok"
	})

	req, resp := newReq("game.state", nil)
	r.Dispatch(req, resp)
	if resp.Body.Code != transport.OK || resp.Body.Msg != "ok" || resp.Body.Seq != 7 {
		t.Fatalf("resp=%+v", resp.Body)
	}
}

func TestRouter_未知路由(t *testing.T) {
	r := NewRouter(nil)
	r.Group("game").Handle("state", func(ctx context.Context, req *WsMsgReq, resp *WsMsgResp) {})

	for _, name := range []string{"game.nope", "other.state", "game", "game.state.x", ".state"} {
		req, resp := newReq(name, nil)
		r.Dispatch(req, resp)
		if resp.Body.Code != transport.NotFound {
			t.Fatalf("%s: code=%d", name, resp.Body.Code)
		}
	}
}

func TestRouter_处理器漏设返回系统错误(t *testing.T) {
	r := NewRouter(nil)
	r.Group("game").Handle("noop", func(ctx context.Context, req *WsMsgReq, resp *WsMsgResp) {})
	req, resp := newReq("game.noop", nil)
	r.Dispatch(req, resp)
	if resp.Body.Code != transport.SystemError {
		t.Fatalf("code=%d", resp.Body.Code)
	}
}

func TestRouter_panic被恢复(t *testing.T) {
	r := NewRouter(nil)
	r.Group("game").Handle("boom", func(ctx context.Context, req *WsMsgReq, resp *WsMsgResp) { panic("x") })
	req, resp := newReq("game.boom", nil)
	r.Dispatch(req, resp)
	if resp.Body.Code != transport.SystemError {
		t.Fatalf("code=%d", resp.Body.Code)
	}
}

func TestRouter_Routes(t *testing.T) {
	r := NewRouter(nil)
	g := r.Group("game")
	g.Handle("move", nil)
	g.Handle("create", nil)
	got := r.Routes()
	if len(got) != 2 || got[0] != "game.create" || got[1] != "game.move" {
		t.Fatalf("routes=%v", got)
	}
}

func TestBindJSON_宽松解码(t *testing.T) {
	var dst struct {
		SessionID int64  `json:"session_id"`
		Direction string `json:"direction"`
		Size      int    `json:"size"`
	}
	req := &WsMsgReq{Body: &ReqBody{Msg: map[string]any{
		"session_id": "123456789012345678",
		"direction":  "left",
		"size":       float64(4),
	}}}
	if err := BindJSON(req, &dst); err != nil {
		t.Fatalf("BindJSON err=%v", err)
	}
	if dst.SessionID != 123456789012345678 || dst.Direction != "left" || dst.Size != 4 {
		t.Fatalf("dst=%+v", dst)
	}
	if err := BindJSON(nil, &dst); err == nil {
		t.Fatalf("nil req 应报错")
	}
}
