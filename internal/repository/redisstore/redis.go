// Package redisstore is the networked persistence backend, for deployments
// where the storefront state must survive the host.
package redisstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"yolimar/configs"
	"yolimar/internal/domain"
	"yolimar/pkg/prometheus"
)

const backend = "redis"

type Store struct {
	client *redis.Client
	prefix string
	log    *slog.Logger
}

func NewStore(ctx context.Context, cfg *configs.Config, prefix string, log *slog.Logger) (*Store, error) {
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.RD.Host,
		DB:           cfg.RD.DB,
		Username:     cfg.RD.User,
		Password:     cfg.RD.Password,
		MaxRetries:   cfg.RD.MaxRetries,
		DialTimeout:  cfg.RD.DialTimeout,
		ReadTimeout:  cfg.RD.ReadTimeout,
		WriteTimeout: cfg.RD.WriteTimeout,
	})

	log.Info("attempting to connect to Redis", "host", cfg.RD.Host, "db", cfg.RD.DB)

	if err := db.Ping(ctx).Err(); err != nil {
		log.Error("Redis connection failed", "error", err, "host", cfg.RD.Host)
		return nil, err
	}
	log.Info("successfully connected to Redis", "host", cfg.RD.Host)

	return &Store{
		client: db,
		prefix: prefix,
		log:    log,
	}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	prometheus.StorageOperationDuration.WithLabelValues(backend, "get").Observe(time.Since(start).Seconds())
	if errors.Is(err, redis.Nil) {
		prometheus.StorageOperationsTotal.WithLabelValues(backend, "get", "miss").Inc()
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		prometheus.StorageOperationsTotal.WithLabelValues(backend, "get", "error").Inc()
		s.log.Error("error getting from redis", "key", key, "error", err)
		return nil, err
	}
	prometheus.StorageOperationsTotal.WithLabelValues(backend, "get", "ok").Inc()
	return data, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := s.client.Set(ctx, s.prefix+key, value, 0).Err()
	prometheus.StorageOperationDuration.WithLabelValues(backend, "set").Observe(time.Since(start).Seconds())
	if err != nil {
		prometheus.StorageOperationsTotal.WithLabelValues(backend, "set", "error").Inc()
		s.log.Error("error while setting to Redis", "key", key, "error", err)
		return err
	}
	prometheus.StorageOperationsTotal.WithLabelValues(backend, "set", "ok").Inc()
	s.log.Debug("value stored in Redis", "key", key)
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	err := s.client.Del(ctx, s.prefix+key).Err()
	if err != nil {
		prometheus.StorageOperationsTotal.WithLabelValues(backend, "remove", "error").Inc()
		return err
	}
	prometheus.StorageOperationsTotal.WithLabelValues(backend, "remove", "ok").Inc()
	return nil
}
