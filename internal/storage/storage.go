package storage

import (
	"context"
	"fmt"

	"go-airline-tickets/config"
	"go-airline-tickets/internal/database"
	"go-airline-tickets/internal/model"
	apperrors "go-airline-tickets/pkg/app_errors"
	"go-airline-tickets/pkg/logger"

	"go.uber.org/zap"
)

// Storage 持久化整份機票資料。Load 在沒有既有資料時回傳空 slice 而非錯誤，
// Save 以傳入的 slice 取代全部既有資料。
type Storage interface {
	Load(ctx context.Context) ([]model.Ticket, error)
	Save(ctx context.Context, tickets []model.Ticket) error
}

// New 依設定選擇 storage backend，回傳的 close func 釋放底層連線
func New(ctx context.Context, cfg *config.Config) (Storage, func(), error) {
	log := logger.WithComponent("storage").With(zap.String("backend", cfg.Storage.Backend))

	switch cfg.Storage.Backend {
	case config.StorageFile, "":
		log.Info("using file storage", zap.String("path", cfg.Storage.DataFile))
		return NewFileStorage(cfg.Storage.DataFile), func() {}, nil

	case config.StorageRedis:
		rdb, err := database.InitRedis(ctx, &cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("init redis: %w", err)
		}
		log.Info("using redis storage", zap.String("prefix", cfg.Redis.Prefix))
		return NewRedisStorage(rdb, cfg.Redis.Prefix), func() { rdb.Close() }, nil

	case config.StoragePostgres:
		pool, err := database.InitDatabase(ctx, &cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("init database: %w", err)
		}
		store := NewPostgresStorage(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ensure schema: %w", err)
		}
		log.Info("using postgres storage", zap.String("db", cfg.Database.DBName))
		return store, pool.Close, nil

	case config.StorageDynamoDB:
		client, err := database.InitDynamoDB(&cfg.DynamoDB)
		if err != nil {
			return nil, nil, fmt.Errorf("init dynamodb: %w", err)
		}
		store := NewDynamoStorage(client, cfg.DynamoDB.Table)
		if err := store.EnsureTable(ctx); err != nil {
			return nil, nil, fmt.Errorf("ensure table: %w", err)
		}
		log.Info("using dynamodb storage", zap.String("table", cfg.DynamoDB.Table))
		return store, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownStorage, cfg.Storage.Backend)
	}
}
