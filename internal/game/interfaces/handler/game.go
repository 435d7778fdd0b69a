package handler

import (
	"context"

	"Game2048/internal/game/domain"
	"Game2048/internal/game/entity"
	"Game2048/internal/shared/session"
)

// Runtime 是各传输层共用的对局入口，由 actor.Runtime 实现。
type Runtime interface {
	Create(ctx context.Context, player string, size int) (entity.SessionView, string, error)
	Start(ctx context.Context, id entity.SessionID, token string) (entity.SessionView, []domain.Spawn, error)
	Move(ctx context.Context, id entity.SessionID, token string, dir domain.Direction) (entity.SessionView, entity.MoveOutcome, error)
	Menu(ctx context.Context, id entity.SessionID, token string) (entity.SessionView, error)
	State(ctx context.Context, id entity.SessionID) (entity.SessionView, error)
	Leaderboard(ctx context.Context, limit int) ([]entity.GameResult, error)
}

// Game 汇总 handler 依赖。
type Game struct {
	Runtime Runtime
	// Session 只有 ws 使用：记录每局由哪条连接控制。
	Session        session.Manager
	SwipeThreshold float64
}

func NewGame(rt Runtime, s session.Manager, swipeThreshold float64) *Game {
	if s == nil {
		s = session.NewSessMgr()
	}
	return &Game{Runtime: rt, Session: s, SwipeThreshold: swipeThreshold}
}
