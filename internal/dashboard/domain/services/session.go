// Package services определяет доменные типы и ошибки сервисного слоя.
package services

import (
	"errors"
	"time"
)

// Ошибки домена аутентификации.
var (
	ErrInvalidSessionToken  = errors.New("invalid session token")
	ErrSessionEstablishment = errors.New("failed to establish session")
)

// Session представляет установленную сессию пользователя.
type Session struct {
	UserID    string
	Email     string
	Token     string
	ExpiresAt time.Time
}
