package actors

import (
	"context"
	"time"

	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"

	"Game2048/internal/game/app"
	"Game2048/modules/kit/logx"
	"Game2048/modules/kit/tracex"
)

// ManagerActor 只负责建局与路由，不做对局计算。
type ManagerActor struct {
	svc      *app.GameService
	idle     time.Duration
	log      logx.Logger
	sessions map[SessionID]*actor.PID
	byPID    map[string]SessionID
}

func NewManagerActor(svc *app.GameService, idle time.Duration, log logx.Logger) *ManagerActor {
	if log == nil {
		log = logx.Nop()
	}
	return &ManagerActor{
		svc:      svc,
		idle:     idle,
		log:      log,
		sessions: make(map[SessionID]*actor.PID),
		byPID:    make(map[string]SessionID),
	}
}

func (m *ManagerActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *CreateGame:
		m.create(ctx, msg)
	case sessionMsg:
		pid, ok := m.sessions[msg.sessionID()]
		if !ok {
			ctx.Respond(&Reply{Err: app.ErrSessionNotFound.WithData("session_id", int64(msg.sessionID()))})
			return
		}
		ctx.Forward(pid)
	case *actor.Terminated:
		m.forget(msg.Who)
	case *SessionCount:
		ctx.Respond(&SessionCountReply{N: len(m.sessions)})
	}
}

func (m *ManagerActor) create(ctx actor.Context, msg *CreateGame) {
	c := metaContext(msg.Meta)
	g, token, err := m.svc.Create(c, msg.Player, msg.Size)
	if err != nil {
		ctx.Respond(&Reply{Err: err})
		return
	}

	id := g.Session.ID()
	props := actor.PropsFromProducer(func() actor.Actor {
		return NewSessionActor(g, m.svc, m.idle, m.log)
	})
	pid := ctx.Spawn(props)
	ctx.Watch(pid)
	m.sessions[id] = pid
	m.byPID[pid.Id] = id

	ctx.Respond(&Reply{View: g.View(), Token: token})
}

func (m *ManagerActor) forget(pid *actor.PID) {
	if pid == nil {
		return
	}
	id, ok := m.byPID[pid.Id]
	if !ok {
		return
	}
	delete(m.byPID, pid.Id)
	delete(m.sessions, id)
	m.log.Info("session actor stopped", zap.Int64("session_id", int64(id)))
}

func metaContext(meta Meta) context.Context {
	ctx := context.Background()
	if meta.TraceID != "" {
		ctx = tracex.WithTraceID(ctx, meta.TraceID)
	}
	return tracex.WithSpanID(ctx, "game-actor")
}
