package entity

import "time"

// GameResult 是一局结束后的成绩记录（不是存档，会话本身不落库）。
type GameResult struct {
	SessionID  SessionID `json:"session_id,string"`
	PlayerID   string    `json:"player_id"`
	Score      int       `json:"score"`
	MaxTile    int       `json:"max_tile"`
	Moves      int       `json:"moves"`
	Size       int       `json:"size"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}
