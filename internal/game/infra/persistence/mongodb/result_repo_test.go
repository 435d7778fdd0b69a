package mongodb

import (
	"context"
	"errors"
	"testing"

	"Game2048/internal/game/entity"
	"Game2048/internal/game/errs"
)

func TestResultRepo_未初始化返回基础设施错误(t *testing.T) {
	repo := NewResultRepo(nil)
	err := repo.Save(context.Background(), entity.GameResult{SessionID: 1})
	var e *errs.Error
	if !errors.As(err, &e) || e.Op != OpSave || e.Kind != errs.KindInfra {
		t.Fatalf("err=%v", err)
	}
	if _, err := repo.Top(context.Background(), 10); !errors.As(err, &e) || e.Op != OpTop {
		t.Fatalf("err=%v", err)
	}
}
