// Package filestore is the local persistence backend: one JSON file per key
// under a data directory. It plays the role browser local storage plays for
// the web storefront.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"yolimar/internal/domain"
	"yolimar/pkg/prometheus"
)

const backend = "file"

type Store struct {
	dir string
	log *slog.Logger
}

func NewStore(dir string, log *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage directory %s: %w", dir, err)
	}
	log.Info("file store ready", "dir", dir)
	return &Store{dir: dir, log: log}, nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	start := time.Now()
	data, err := os.ReadFile(s.path(key))
	prometheus.StorageOperationDuration.WithLabelValues(backend, "get").Observe(time.Since(start).Seconds())
	if errors.Is(err, fs.ErrNotExist) {
		prometheus.StorageOperationsTotal.WithLabelValues(backend, "get", "miss").Inc()
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		prometheus.StorageOperationsTotal.WithLabelValues(backend, "get", "error").Inc()
		s.log.Error("failed to read key", "key", key, "error", err)
		return nil, err
	}
	prometheus.StorageOperationsTotal.WithLabelValues(backend, "get", "ok").Inc()
	return data, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	start := time.Now()
	// Write through a temp file so a crashed write never leaves a torn value.
	path := s.path(key)
	tmp := path + ".tmp"
	err := os.WriteFile(tmp, value, 0o644)
	if err == nil {
		err = os.Rename(tmp, path)
	}
	prometheus.StorageOperationDuration.WithLabelValues(backend, "set").Observe(time.Since(start).Seconds())
	if err != nil {
		prometheus.StorageOperationsTotal.WithLabelValues(backend, "set", "error").Inc()
		s.log.Error("failed to write key", "key", key, "error", err)
		return err
	}
	prometheus.StorageOperationsTotal.WithLabelValues(backend, "set", "ok").Inc()
	return nil
}

func (s *Store) Remove(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		prometheus.StorageOperationsTotal.WithLabelValues(backend, "remove", "miss").Inc()
		return nil
	}
	if err != nil {
		prometheus.StorageOperationsTotal.WithLabelValues(backend, "remove", "error").Inc()
		return err
	}
	prometheus.StorageOperationsTotal.WithLabelValues(backend, "remove", "ok").Inc()
	return nil
}

// path maps a storage key to a file name, replacing separators the filesystem
// would reject ("order:<uuid>" becomes "order_<uuid>.json").
func (s *Store) path(key string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, key)
	return filepath.Join(s.dir, sanitized+".json")
}
