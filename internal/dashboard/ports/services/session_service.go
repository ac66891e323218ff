package services

import (
	"context"

	"invoiceboard/internal/dashboard/domain/services"
)

// SessionService устанавливает и проверяет сессии пользователей.
type SessionService interface {
	Establish(ctx context.Context, userID, email string) (*services.Session, error)

	Verify(ctx context.Context, token string) (string, error)
}
