package actors

import (
	"time"

	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"

	"Game2048/internal/game/app"
	"Game2048/modules/kit/logx"
)

// SessionActor 独占一局游戏。邮箱串行处理消息，上一次移动的结果产出前不会开始下一次移动。
type SessionActor struct {
	game       *app.Game
	svc        *app.GameService
	idle       time.Duration
	log        logx.Logger
	dispatcher *Dispatcher
}

func NewSessionActor(g *app.Game, svc *app.GameService, idle time.Duration, log logx.Logger) *SessionActor {
	return &SessionActor{
		game:       g,
		svc:        svc,
		idle:       idle,
		log:        log,
		dispatcher: NewDispatcher(),
	}
}

func (a *SessionActor) Receive(ctx actor.Context) {
	switch ctx.Message().(type) {
	case *actor.Started:
		if a.idle > 0 {
			ctx.SetReceiveTimeout(a.idle)
		}
	case *actor.ReceiveTimeout:
		a.log.Info("session idle, stopping",
			zap.Int64("session_id", int64(a.game.Session.ID())), zap.Duration("idle", a.idle))
		ctx.Stop(ctx.Self())
	case *actor.Stopping, *actor.Stopped, *actor.Restarting:
	default:
		a.dispatcher.Dispatch(ctx, a, ctx.Message())
	}
}
