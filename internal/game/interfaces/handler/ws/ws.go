package ws

import (
	"context"
	"errors"

	"Game2048/internal/game/app"
	"Game2048/internal/game/entity"
	"Game2048/internal/game/interfaces/handler"
	"Game2048/internal/game/interfaces/handler/dto"
	"Game2048/internal/shared/transport"
	"Game2048/internal/shared/transport/ws"
)

type WsHandler struct {
	game *handler.Game
}

func NewWsHandler(g *handler.Game) *WsHandler {
	return &WsHandler{game: g}
}

func (h *WsHandler) RegisterRoutes(r *ws.Router) {
	g := r.Group("game")
	g.Handle("create", h.Create)
	g.Handle("start", h.Start)
	g.Handle("move", h.Move)
	g.Handle("menu", h.Menu)
	g.Handle("state", h.State)
	g.Handle("leaderboard", h.Leaderboard)
}

func (h *WsHandler) Create(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	if !valid(wsReq, wsResp) {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}

	var req dto.CreateGameReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}

	view, token, err := h.game.Runtime.Create(ctx, req.Player, req.Size)
	if err != nil {
		h.error(ctx, wsResp, err)
		return
	}
	// 同一连接后续请求可以不再携带令牌。
	h.game.Session.Bind(int64(view.ID), token, wsReq.Conn)
	h.ok(wsResp, dto.CreateGameResp{Session: view, Token: token})
}

func (h *WsHandler) Start(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	req, ok := h.bindSession(wsReq, wsResp)
	if !ok {
		return
	}
	id := entity.SessionID(req.SessionID)

	view, spawns, err := h.game.Runtime.Start(ctx, id, h.token(wsReq, id, req.Token))
	if err != nil {
		h.sessionError(ctx, wsResp, id, err)
		return
	}
	h.claim(wsReq, id, req.Token)
	h.ok(wsResp, dto.StartGameResp{Session: view, Spawns: spawns})
}

func (h *WsHandler) Move(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	if !valid(wsReq, wsResp) {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}

	var req dto.MoveReq
	if err := ws.BindJSON(wsReq, &req); err != nil || req.SessionID <= 0 {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	id := entity.SessionID(req.SessionID)

	dir, ok, err := req.Resolve(h.game.SwipeThreshold)
	if err != nil {
		h.error(ctx, wsResp, err)
		return
	}
	if !ok {
		view, err := h.game.Runtime.State(ctx, id)
		if err != nil {
			h.error(ctx, wsResp, err)
			return
		}
		h.ok(wsResp, dto.NewMoveGameResp(view, entity.MoveOutcome{}))
		return
	}

	view, out, err := h.game.Runtime.Move(ctx, id, h.token(wsReq, id, req.Token), dir)
	if err != nil {
		h.sessionError(ctx, wsResp, id, err)
		return
	}
	h.claim(wsReq, id, req.Token)
	h.ok(wsResp, dto.NewMoveGameResp(view, out))
}

func (h *WsHandler) Menu(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	req, ok := h.bindSession(wsReq, wsResp)
	if !ok {
		return
	}
	id := entity.SessionID(req.SessionID)

	view, err := h.game.Runtime.Menu(ctx, id, h.token(wsReq, id, req.Token))
	if err != nil {
		h.sessionError(ctx, wsResp, id, err)
		return
	}
	h.claim(wsReq, id, req.Token)
	h.ok(wsResp, view)
}

func (h *WsHandler) State(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	req, ok := h.bindSession(wsReq, wsResp)
	if !ok {
		return
	}

	view, err := h.game.Runtime.State(ctx, entity.SessionID(req.SessionID))
	if err != nil {
		h.error(ctx, wsResp, err)
		return
	}
	h.ok(wsResp, view)
}

func (h *WsHandler) Leaderboard(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	if !valid(wsReq, wsResp) {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}

	var req dto.LeaderboardReq
	if wsReq.Body.Msg != nil {
		if err := ws.BindJSON(wsReq, &req); err != nil {
			h.fail(wsResp, transport.InvalidParam, "参数有误")
			return
		}
	}
	results, err := h.game.Runtime.Leaderboard(ctx, req.Limit)
	if err != nil {
		h.error(ctx, wsResp, err)
		return
	}
	h.ok(wsResp, dto.LeaderboardResp{Results: results})
}

func (h *WsHandler) bindSession(wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) (dto.SessionReq, bool) {
	var req dto.SessionReq
	if !valid(wsReq, wsResp) {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return req, false
	}
	if err := ws.BindJSON(wsReq, &req); err != nil || req.SessionID <= 0 {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return req, false
	}
	return req, true
}

// token 优先用请求里带的，其次用本连接控制该局时登记的。
func (h *WsHandler) token(wsReq *ws.WsMsgReq, id entity.SessionID, given string) string {
	if given != "" {
		return given
	}
	t, _ := h.game.Session.Token(wsReq.Conn, int64(id))
	return t
}

// claim 显式带令牌且操作成功时，本连接接管该局。
func (h *WsHandler) claim(wsReq *ws.WsMsgReq, id entity.SessionID, given string) {
	if given == "" {
		return
	}
	if t, ok := h.game.Session.Token(wsReq.Conn, int64(id)); ok && t == given {
		return
	}
	h.game.Session.Bind(int64(id), given, wsReq.Conn)
}

func valid(wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) bool {
	return wsReq != nil && wsReq.Body != nil && wsReq.Conn != nil && wsResp != nil && wsResp.Body != nil
}

func (h *WsHandler) ok(resp *ws.WsMsgResp, data any) {
	if resp == nil || resp.Body == nil {
		return
	}
	resp.Body.Code = transport.OK
	resp.Body.Msg = data
}

func (h *WsHandler) fail(resp *ws.WsMsgResp, code int, msg string) {
	if resp == nil || resp.Body == nil {
		return
	}
	resp.Body.Code = code
	if msg != "" {
		resp.Body.Msg = msg
	}
}

// sessionError 对局已被回收时顺带解除连接绑定。
func (h *WsHandler) sessionError(ctx context.Context, resp *ws.WsMsgResp, id entity.SessionID, err error) {
	if errors.Is(err, app.ErrSessionNotFound) {
		h.game.Session.Unbind(int64(id))
	}
	h.error(ctx, resp, err)
}

func (h *WsHandler) error(ctx context.Context, resp *ws.WsMsgResp, err error) {
	code, msg := handler.HandleError(ctx, err)
	h.fail(resp, code, msg)
}
