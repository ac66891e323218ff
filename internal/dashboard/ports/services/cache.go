package services

import (
	"context"
	"time"
)

// ViewCache кэширует представления данных панели и позволяет
// инвалидировать семейство ключей после мутаций.
type ViewCache interface {
	Get(ctx context.Context, key string) (string, error)

	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	Invalidate(ctx context.Context, prefix string) error

	Close() error
}
