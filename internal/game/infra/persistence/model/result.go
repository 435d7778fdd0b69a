package model

import (
	"time"

	"Game2048/internal/game/entity"
)

// GameResult 是 game_result 表（mysql）与 game_result 集合（mongodb）共用的记录。
type GameResult struct {
	SessionID  int64     `gorm:"column:session_id;type:bigint;comment:对局id;primaryKey;autoIncrement:false;" json:"session_id" bson:"_id"`
	PlayerID   string    `gorm:"column:player_id;type:varchar(64);comment:玩家;not null;index:idx_player;" json:"player_id" bson:"player_id"`
	Score      int       `gorm:"column:score;type:int;comment:得分;not null;default:0;index:idx_score_finished,priority:1,sort:desc;" json:"score" bson:"score"`
	MaxTile    int       `gorm:"column:max_tile;type:int;comment:最大方块;not null;default:0;" json:"max_tile" bson:"max_tile"`
	Moves      int       `gorm:"column:moves;type:int;comment:步数;not null;default:0;" json:"moves" bson:"moves"`
	Size       int       `gorm:"column:size;type:tinyint UNSIGNED;comment:棋盘边长;not null;default:4;" json:"size" bson:"size"`
	StartedAt  time.Time `gorm:"column:started_at;type:datetime(3);comment:开局时间;" json:"started_at" bson:"started_at"`
	FinishedAt time.Time `gorm:"column:finished_at;type:datetime(3);comment:结束时间;not null;index:idx_score_finished,priority:2;" json:"finished_at" bson:"finished_at"`
}

func (GameResult) TableName() string {
	return "game_result"
}

func ResultFromEntity(r entity.GameResult) GameResult {
	return GameResult{
		SessionID:  int64(r.SessionID),
		PlayerID:   r.PlayerID,
		Score:      r.Score,
		MaxTile:    r.MaxTile,
		Moves:      r.Moves,
		Size:       r.Size,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
	}
}

func (m GameResult) ToEntity() entity.GameResult {
	return entity.GameResult{
		SessionID:  entity.SessionID(m.SessionID),
		PlayerID:   m.PlayerID,
		Score:      m.Score,
		MaxTile:    m.MaxTile,
		Moves:      m.Moves,
		Size:       m.Size,
		StartedAt:  m.StartedAt,
		FinishedAt: m.FinishedAt,
	}
}
