package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	pingTimeout = 3 * time.Second
	// commandTimeout ограничивает GET/SET кэша; BRPOP с нулевым таймаутом ждет без дедлайна сам
	commandTimeout = 3 * time.Second
)

// NewRedisClient создает клиент Redis для очереди отметок и кэша больниц
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(clientOptions(addr, password, db))

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return rdb, nil
}

func clientOptions(addr, password string, db int) *redis.Options {
	return &redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		PoolSize:     10,
		ReadTimeout:  commandTimeout,
		WriteTimeout: commandTimeout,
	}
}
