package memory

import (
	"context"
	"testing"
	"time"

	"Game2048/internal/game/entity"
)

func TestResultRepo_排行榜按分数降序(t *testing.T) {
	repo := NewResultRepo()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	records := []entity.GameResult{
		{SessionID: 1, Score: 100, FinishedAt: base},
		{SessionID: 2, Score: 300, FinishedAt: base},
		{SessionID: 3, Score: 300, FinishedAt: base.Add(-time.Minute)},
		{SessionID: 4, Score: 50, FinishedAt: base},
	}
	for _, r := range records {
		if err := repo.Save(ctx, r); err != nil {
			t.Fatalf("Save err=%v", err)
		}
	}

	top, err := repo.Top(ctx, 3)
	if err != nil {
		t.Fatalf("Top err=%v", err)
	}
	want := []entity.SessionID{3, 2, 1}
	if len(top) != len(want) {
		t.Fatalf("len=%d", len(top))
	}
	for i, id := range want {
		if top[i].SessionID != id {
			t.Fatalf("top[%d]=%d want %d", i, top[i].SessionID, id)
		}
	}
}

func TestResultRepo_重复保存覆盖(t *testing.T) {
	repo := NewResultRepo()
	ctx := context.Background()
	_ = repo.Save(ctx, entity.GameResult{SessionID: 1, Score: 10})
	_ = repo.Save(ctx, entity.GameResult{SessionID: 1, Score: 20})
	top, _ := repo.Top(ctx, 10)
	if len(top) != 1 || top[0].Score != 20 {
		t.Fatalf("top=%+v", top)
	}
}

func TestResultRepo_ctx取消(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewResultRepo().Save(ctx, entity.GameResult{}); err == nil {
		t.Fatalf("取消的 ctx 应返回错误")
	}
}
