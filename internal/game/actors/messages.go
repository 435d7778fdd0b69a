package actors

import (
	"Game2048/internal/game/domain"
	"Game2048/internal/game/entity"
)

type SessionID = entity.SessionID

// Meta 随每条消息携带，actor 内用它恢复 trace 上下文。
type Meta struct {
	TraceID string
}

// CreateGame 由 ManagerActor 处理：新建对局并为其 spawn 一个 SessionActor。
type CreateGame struct {
	Meta
	Player string
	Size   int
}

// 以下消息按 SessionID 转发给对应的 SessionActor。

type StartGame struct {
	Meta
	SessionID SessionID
}

type MoveGame struct {
	Meta
	SessionID SessionID
	Direction domain.Direction
}

type MenuGame struct {
	Meta
	SessionID SessionID
}

type GetState struct {
	Meta
	SessionID SessionID
}

// sessionMsg 是需要路由到某个对局的消息。
type sessionMsg interface {
	sessionID() SessionID
}

func (m *StartGame) sessionID() SessionID { return m.SessionID }
func (m *MoveGame) sessionID() SessionID  { return m.SessionID }
func (m *MenuGame) sessionID() SessionID  { return m.SessionID }
func (m *GetState) sessionID() SessionID  { return m.SessionID }

// Reply 是所有请求的统一回复；Err 非空时其余字段无意义。
type Reply struct {
	View   entity.SessionView
	Token  string
	Spawns []domain.Spawn
	Move   *entity.MoveOutcome
	Err    error
}

// SessionCount 查询 ManagerActor 当前托管的对局数。
type SessionCount struct{}

type SessionCountReply struct {
	N int
}
