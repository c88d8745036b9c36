package usecase

import (
	"context"

	"yolimar/internal/domain"
)

type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

type eventProducer interface {
	Produce(message, topic, key string) error
}

type verifier interface {
	Verify(email, password string) (*domain.User, bool)
}
