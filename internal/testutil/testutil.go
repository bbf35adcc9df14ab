package testutil

import (
	"context"
	"fmt"
	"os"
	"time"

	"go-airline-tickets/config"
	"go-airline-tickets/internal/database"

	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// 外部服務連不上時整合測試應 skip，而不是讓整包測試失敗
const connectTimeout = 2 * time.Second

// SetupRedisOnly 連到測試用 Redis (6380)
func SetupRedisOnly() (*redis.Client, func(), error) {
	cfg := config.LoadTestConfig()

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	rdb, err := database.InitRedis(ctx, &cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize redis: %v", err)
	}
	cleanup := func() { rdb.Close() }
	return rdb, cleanup, nil
}

// SetupPostgres 連到測試用 Postgres (5433)
func SetupPostgres() (*pgxpool.Pool, func(), error) {
	cfg := config.LoadTestConfig()

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := database.InitDatabase(ctx, &cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize test database: %v", err)
	}
	return pool, pool.Close, nil
}

// SetupDynamoDB 連到測試用 dynamodb-local (8001)
func SetupDynamoDB() (*dynamodb.DynamoDB, string, error) {
	cfg := config.LoadTestConfig()

	// dynamodb-local 不驗證憑證，但 SDK 簽章需要有值
	if os.Getenv("AWS_ACCESS_KEY_ID") == "" {
		os.Setenv("AWS_ACCESS_KEY_ID", "x")
		os.Setenv("AWS_SECRET_ACCESS_KEY", "x")
	}

	client, err := database.InitDynamoDB(&cfg.DynamoDB)
	if err != nil {
		return nil, "", fmt.Errorf("failed to initialize dynamodb: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if _, err := client.ListTablesWithContext(ctx, &dynamodb.ListTablesInput{}); err != nil {
		return nil, "", fmt.Errorf("failed to reach dynamodb: %v", err)
	}
	return client, cfg.DynamoDB.Table, nil
}
