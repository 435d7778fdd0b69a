package app

import (
	"context"

	"Game2048/internal/game/entity"
	"Game2048/modules/kit/logx"
)

// ResultRepo 保存已结束对局的成绩并提供排行榜查询。
type ResultRepo interface {
	Save(ctx context.Context, r entity.GameResult) error
	// Top 按分数降序返回前 limit 条，同分时先结束的在前。
	Top(ctx context.Context, limit int) ([]entity.GameResult, error)
}

// TokenSigner 签发/校验绑定对局的令牌。
type TokenSigner interface {
	Award(sessionID int64, player string) (string, error)
	Verify(token string, sessionID int64) error
}

// IDGen 生成全局唯一的对局 id。
type IDGen func() (int64, error)

type Logger = logx.Logger
