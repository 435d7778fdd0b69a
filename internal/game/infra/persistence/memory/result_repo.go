package memory

import (
	"context"
	"sort"
	"sync"

	"Game2048/internal/game/entity"
)

// ResultRepo 进程内成绩表，重启即丢失；未配置数据库时使用。
type ResultRepo struct {
	mu      sync.RWMutex
	results map[entity.SessionID]entity.GameResult
}

func NewResultRepo() *ResultRepo {
	return &ResultRepo{results: make(map[entity.SessionID]entity.GameResult)}
}

// Save 同一对局重复保存时覆盖。
func (r *ResultRepo) Save(ctx context.Context, res entity.GameResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[res.SessionID] = res
	return nil
}

func (r *ResultRepo) Top(ctx context.Context, limit int) ([]entity.GameResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	list := make([]entity.GameResult, 0, len(r.results))
	for _, res := range r.results {
		list = append(list, res)
	}
	r.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].Score != list[j].Score {
			return list[i].Score > list[j].Score
		}
		if !list[i].FinishedAt.Equal(list[j].FinishedAt) {
			return list[i].FinishedAt.Before(list[j].FinishedAt)
		}
		return list[i].SessionID < list[j].SessionID
	})
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}
