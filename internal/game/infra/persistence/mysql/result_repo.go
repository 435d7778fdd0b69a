package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"Game2048/internal/game/entity"
	"Game2048/internal/game/errs"
	"Game2048/internal/game/infra/persistence/model"
)

const (
	OpSave    = "repo.result.Save"
	OpTop     = "repo.result.Top"
	OpMigrate = "repo.result.Migrate"
)

type ResultRepo struct {
	db *gorm.DB
}

func NewResultRepo(db *gorm.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

// Migrate 建表，启动时调用一次。
func (r *ResultRepo) Migrate(ctx context.Context) error {
	if r.db == nil {
		return errs.Wrap(OpMigrate, errs.KindInfra, errors.New("mysql db is nil"), nil)
	}
	return errs.Wrap(OpMigrate, errs.KindInfra, r.db.WithContext(ctx).AutoMigrate(&model.GameResult{}), nil)
}

// Save 以 session_id 为主键 upsert。
func (r *ResultRepo) Save(ctx context.Context, res entity.GameResult) error {
	if r.db == nil {
		return errs.Wrap(OpSave, errs.KindInfra, errors.New("mysql db is nil"), nil)
	}
	m := model.ResultFromEntity(res)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&m).Error
	return errs.Wrap(OpSave, errs.KindInfra, err, map[string]any{"session_id": m.SessionID})
}

func (r *ResultRepo) Top(ctx context.Context, limit int) ([]entity.GameResult, error) {
	if r.db == nil {
		return nil, errs.Wrap(OpTop, errs.KindInfra, errors.New("mysql db is nil"), nil)
	}
	var rows []model.GameResult
	err := r.db.WithContext(ctx).
		Order("score DESC").
		Order("finished_at ASC").
		Order("session_id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, errs.Wrap(OpTop, errs.KindInfra, err, map[string]any{"limit": limit})
	}
	out := make([]entity.GameResult, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.ToEntity())
	}
	return out, nil
}
