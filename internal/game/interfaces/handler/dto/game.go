package dto

import (
	"strings"

	"Game2048/internal/game/app"
	"Game2048/internal/game/domain"
	"Game2048/internal/game/entity"
	"Game2048/internal/game/input"
)

// ErrNoDirection 三种方向输入都没给。
var ErrNoDirection = app.ErrReqParam.WithReason(app.ReasonBadDirection)

type CreateGameReq struct {
	Player string `json:"player"`
	Size   int    `json:"size"`
}

type CreateGameResp struct {
	Session entity.SessionView `json:"session"`
	Token   string             `json:"token"`
}

// SessionReq 是 WS/RPC 上针对某局的请求，HTTP 的 id 走路径参数。
type SessionReq struct {
	SessionID int64  `json:"session_id,string"`
	Token     string `json:"token"`
}

type Swipe struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// MoveReq 三选一：direction（up/down/left/right）、key（键名）、swipe（滑动位移）。
type MoveReq struct {
	SessionReq `json:",squash"`
	Direction  string `json:"direction"`
	Key        string `json:"key"`
	Swipe      *Swipe `json:"swipe"`
}

// Resolve 按 direction > key > swipe 的顺序解析方向。
// swipe 未超过阈值时返回 ok=false，调用方应当忽略本次输入而不是报错。
func (r MoveReq) Resolve(threshold float64) (domain.Direction, bool, error) {
	if d := strings.TrimSpace(r.Direction); d != "" {
		dir, err := domain.ParseDirection(d)
		if err != nil {
			return 0, false, err
		}
		return dir, true, nil
	}
	if r.Key != "" {
		dir, ok := input.FromKey(r.Key)
		if !ok {
			return 0, false, domain.ErrInvalidDirection.WithData("key", r.Key)
		}
		return dir, true, nil
	}
	if r.Swipe != nil {
		dir, ok := input.FromSwipe(r.Swipe.DX, r.Swipe.DY, threshold)
		return dir, ok, nil
	}
	return 0, false, ErrNoDirection
}

type StartGameResp struct {
	Session entity.SessionView `json:"session"`
	Spawns  []domain.Spawn     `json:"spawns"`
}

type MoveGameResp struct {
	Session     entity.SessionView `json:"session"`
	Moved       bool               `json:"moved"`
	ScoreGained int                `json:"score_gained"`
	Tiles       []domain.TileMove  `json:"tiles"`
	Spawn       *domain.Spawn      `json:"spawn,omitempty"`
	Finished    bool               `json:"finished"`
}

func NewMoveGameResp(view entity.SessionView, out entity.MoveOutcome) MoveGameResp {
	return MoveGameResp{
		Session:     view,
		Moved:       out.Result.Moved,
		ScoreGained: out.Result.ScoreGained,
		Tiles:       out.Result.Tiles,
		Spawn:       out.Spawn,
		Finished:    out.Finished,
	}
}

type LeaderboardReq struct {
	Limit int `json:"limit" form:"limit"`
}

type LeaderboardResp struct {
	Results []entity.GameResult `json:"results"`
}
