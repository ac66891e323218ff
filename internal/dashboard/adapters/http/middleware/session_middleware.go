// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	svc "invoiceboard/internal/dashboard/ports/services"
	"invoiceboard/pkg/logger"
)

// Константы для логирования.
const (
	LogSessionMiddleware = "session middleware"

	ErrorNoSessionCookie = "no session cookie provided"
	ErrorInvalidSession  = "invalid or expired session"
	ErrorUnauthorized    = "Unauthorized"
	UserIDLocal          = "userID"
)

// NewSessionMiddleware создает промежуточное ПО, пропускающее
// только запросы с действительной сессией.
func NewSessionMiddleware(cookieName string, sessions svc.SessionService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "session"))
		log.Debug(requestCtx, LogSessionMiddleware)

		token := ctx.Cookies(cookieName)
		if token == "" {
			log.Debug(requestCtx, ErrorNoSessionCookie)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorUnauthorized,
			})
		}

		userID, err := sessions.Verify(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidSession, zap.Error(err))
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorUnauthorized,
			})
		}

		ctx.Locals(UserIDLocal, userID)

		return ctx.Next()
	}
}
