package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/blackout-luminera/guild-xp-ranking/internal/constants"
	"github.com/blackout-luminera/guild-xp-ranking/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SnapshotMirror copies the latest snapshot document into Redis so other
// readers can pick it up without touching the file system.
type SnapshotMirror struct {
	client *redis.Client
	key    string
	logger *zap.Logger
}

type MirrorConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	Key      string
}

func NewSnapshotMirror(ctx context.Context, cfg MirrorConfig, logger *zap.Logger) (*SnapshotMirror, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   -1,
		DialTimeout:  constants.RedisConfig.DialTimeout,
		ReadTimeout:  constants.RedisConfig.WriteTimeout,
		WriteTimeout: constants.RedisConfig.WriteTimeout,
		PoolSize:     1,
	})

	pingCtx, cancel := context.WithTimeout(ctx, constants.RedisConfig.DialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewMirrorError("failed to connect to Redis", "ping", cfg.Key, err)
	}

	logger.Info("Redis connected",
		zap.String("addr", addr),
		zap.Int("db", cfg.DB),
		zap.String("key", cfg.Key),
	)

	return &SnapshotMirror{
		client: client,
		key:    cfg.Key,
		logger: logger,
	}, nil
}

// Publish replaces the mirrored document and records when it was mirrored.
func (m *SnapshotMirror) Publish(ctx context.Context, document []byte, at time.Time) error {
	_, err := m.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, m.key, document, 0)
		pipe.Set(ctx, m.key+":updated_at", at.UTC().Format(time.RFC3339), 0)
		return nil
	})
	if err != nil {
		m.logger.Error("Snapshot mirror failed", zap.String("key", m.key), zap.Error(err))
		return errors.NewMirrorError("set failed", "set", m.key, err)
	}

	m.logger.Info("Snapshot mirrored", zap.String("key", m.key), zap.Int("bytes", len(document)))
	return nil
}

func (m *SnapshotMirror) Key() string {
	return m.key
}

func (m *SnapshotMirror) Close() error {
	return m.client.Close()
}
