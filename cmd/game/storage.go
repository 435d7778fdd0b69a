package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"Game2048/internal/game/app"
	"Game2048/internal/game/infra/persistence/memory"
	"Game2048/internal/game/infra/persistence/mongodb"
	"Game2048/internal/game/infra/persistence/mysql"
	"Game2048/internal/shared/config"
	"Game2048/internal/shared/infrastructure/db"
	"Game2048/internal/shared/infrastructure/mongo"
	"Game2048/internal/shared/logs"
)

// openResults 按 storage.driver 打开成绩库，返回的 closer 在退出时调用。
func openResults(cfg config.Config) (app.ResultRepo, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch cfg.Storage.Driver {
	case "", config.DriverMemory:
		return memory.NewResultRepo(), func() {}, nil

	case config.DriverMySQL:
		gormDB, err := db.Open(cfg.MySQL)
		if err != nil {
			return nil, nil, fmt.Errorf("open mysql: %w", err)
		}
		repo := mysql.NewResultRepo(gormDB)
		if err := repo.Migrate(ctx); err != nil {
			_ = db.Close(gormDB)
			return nil, nil, fmt.Errorf("migrate game_result: %w", err)
		}
		return repo, func() { _ = db.Close(gormDB) }, nil

	case config.DriverMongoDB:
		client, err := mongo.Open(cfg.MongoDB, logs.Logger())
		if err != nil {
			return nil, nil, fmt.Errorf("open mongodb: %w", err)
		}
		repo := mongodb.NewResultRepo(client.Database(cfg.MongoDB.Database))
		if err := repo.EnsureIndex(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, fmt.Errorf("ensure game_result index: %w", err)
		}
		closer := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logs.Warn("disconnect mongodb failed", zap.Error(err))
			}
		}
		return repo, closer, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
