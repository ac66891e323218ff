// Package auth содержит HTTP обработчики действий входа и регистрации.
package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"

	"invoiceboard/internal/dashboard/app"
	"invoiceboard/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerLogin    = "auth handler: login"
	LogHandlerRegister = "auth handler: register"
	LogHandlerLogout   = "auth handler: logout"
)

// Handler содержит HTTP обработчики аутентификации.
type Handler struct {
	actions    *app.Actions
	cookieName string
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(actions *app.Actions, cookieName string) *Handler {
	return &Handler{
		actions:    actions,
		cookieName: cookieName,
	}
}

// Login обрабатывает отправку формы входа.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	form := map[string]string{
		app.FieldEmail:    ctx.FormValue(app.FieldEmail),
		app.FieldPassword: ctx.FormValue(app.FieldPassword),
	}

	result := h.actions.Authenticate(requestCtx, form)

	failStatus := http.StatusInternalServerError
	if result.Message == app.MsgInvalidCredentials {
		failStatus = http.StatusUnauthorized
	}

	return h.respond(ctx, result, failStatus)
}

// Register обрабатывает отправку формы регистрации.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	form := map[string]string{
		app.FieldEmail:           ctx.FormValue(app.FieldEmail),
		app.FieldName:            ctx.FormValue(app.FieldName),
		app.FieldPassword:        ctx.FormValue(app.FieldPassword),
		app.FieldConfirmPassword: ctx.FormValue(app.FieldConfirmPassword),
	}

	result := h.actions.Register(requestCtx, form)

	failStatus := http.StatusInternalServerError
	if result.Message == app.MsgEmailTaken {
		failStatus = http.StatusConflict
	}

	return h.respond(ctx, result, failStatus)
}

// Logout завершает сессию, сбрасывая cookie.
func (h *Handler) Logout(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogout)

	ctx.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})

	return ctx.Redirect().Status(fiber.StatusSeeOther).To("/login")
}

// respond переводит результат действия в HTTP ответ: успех с навигацией
// становится redirect, ошибки валидации и сбои возвращаются как JSON.
func (h *Handler) respond(ctx fiber.Ctx, result *app.ActionResult, failStatus int) error {
	switch result.Status {
	case app.StatusOK:
		if result.Session != nil {
			ctx.Cookie(&fiber.Cookie{
				Name:     h.cookieName,
				Value:    result.Session.Token,
				Expires:  result.Session.ExpiresAt,
				HTTPOnly: true,
				SameSite: "Lax",
				Path:     "/",
			})
		}
		if result.Redirect != "" {
			return ctx.Redirect().Status(fiber.StatusSeeOther).To(result.Redirect)
		}
		if err := ctx.Status(http.StatusOK).JSON(result); err != nil {
			return fmt.Errorf("sending response: %w", err)
		}
		return nil
	case app.StatusInvalid:
		if err := ctx.Status(http.StatusBadRequest).JSON(result); err != nil {
			return fmt.Errorf("sending response: %w", err)
		}
		return nil
	default:
		if err := ctx.Status(failStatus).JSON(result); err != nil {
			return fmt.Errorf("sending response: %w", err)
		}
		return nil
	}
}
