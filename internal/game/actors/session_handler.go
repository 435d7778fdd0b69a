package actors

import (
	"github.com/asynkron/protoactor-go/actor"
)

type sessionHandler struct{}

// SH 是 SessionActor 的消息处理器集合。
var SH sessionHandler

func (sessionHandler) HandleStart(ctx actor.Context, a *SessionActor, req *StartGame) {
	c := metaContext(req.Meta)
	spawns, err := a.svc.Start(c, a.game)
	if err != nil {
		respond(ctx, &Reply{Err: err})
		return
	}
	respond(ctx, &Reply{View: a.game.View(), Spawns: spawns})
}

func (sessionHandler) HandleMove(ctx actor.Context, a *SessionActor, req *MoveGame) {
	c := metaContext(req.Meta)
	out, err := a.svc.Move(c, a.game, req.Direction)
	if err != nil {
		respond(ctx, &Reply{Err: err})
		return
	}
	respond(ctx, &Reply{View: a.game.View(), Move: &out})
}

func (sessionHandler) HandleMenu(ctx actor.Context, a *SessionActor, req *MenuGame) {
	a.svc.Menu(metaContext(req.Meta), a.game)
	respond(ctx, &Reply{View: a.game.View()})
}

func (sessionHandler) HandleState(ctx actor.Context, a *SessionActor, _ *GetState) {
	respond(ctx, &Reply{View: a.game.View()})
}
