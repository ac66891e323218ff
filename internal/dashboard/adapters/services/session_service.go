package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"invoiceboard/internal/dashboard/domain/services"
	svc "invoiceboard/internal/dashboard/ports/services"
	"invoiceboard/pkg/logger"
)

const (
	methodEstablish = "Establish"
	methodVerify    = "Verify"

	msgEstablishingSession = "establishing session"
	msgSessionEstablished  = "session established"
	msgVerifyingSession    = "verifying session token"
	msgInvalidSessionToken = "invalid session token"
	msgSessionExpired      = "session token has expired"

	errCtxSigningToken = "signing session token"
	errCtxParsingToken = "parsing session token"
)

// ErrInvalidAlgorithm представляет статическую ошибку неверного алгоритма подписи.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// sessionClaims адаптирует доменную сессию к формату библиотеки JWT.
type sessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// ServiceSession реализует интерфейс SessionService поверх подписанных JWT.
type ServiceSession struct {
	secretKey  []byte
	sessionTTL time.Duration
}

// NewSession создает новый экземпляр сервиса сессий.
func NewSession(secretKey string, sessionTTL time.Duration) svc.SessionService {
	return &ServiceSession{
		secretKey:  []byte(secretKey),
		sessionTTL: sessionTTL,
	}
}

// Establish выпускает подписанный токен сессии для пользователя.
func (s *ServiceSession) Establish(ctx context.Context, userID, email string) (*services.Session, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodEstablish),
		zap.String("userID", userID),
	)
	log.Debug(ctx, msgEstablishingSession)

	if len(s.secretKey) == 0 {
		return nil, fmt.Errorf("%s: %w: empty secret key", errCtxSigningToken, services.ErrSessionEstablishment)
	}

	now := time.Now()
	expiresAt := now.Add(s.sessionTTL)

	claims := sessionClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		log.Error(ctx, errCtxSigningToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxSigningToken, services.ErrSessionEstablishment)
	}

	log.Debug(ctx, msgSessionEstablished)

	return &services.Session{
		UserID:    userID,
		Email:     email,
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

// Verify проверяет токен сессии и возвращает идентификатор пользователя.
func (s *ServiceSession) Verify(ctx context.Context, tokenString string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodVerify))
	log.Debug(ctx, msgVerifyingSession)

	parsed, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgSessionExpired)
		} else {
			log.Debug(ctx, msgInvalidSessionToken, zap.Error(err))
		}
		return "", fmt.Errorf("%s: %w", errCtxParsingToken, services.ErrInvalidSessionToken)
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid || claims.UserID == "" {
		log.Debug(ctx, msgInvalidSessionToken)
		return "", services.ErrInvalidSessionToken
	}

	return claims.UserID, nil
}
