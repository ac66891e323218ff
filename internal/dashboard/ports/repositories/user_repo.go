// Package repositories определяет интерфейсы слоя хранения.
package repositories

import (
	"context"

	"invoiceboard/internal/dashboard/domain/entities"
)

// UserRepository определяет интерфейс для операций над пользователями.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
