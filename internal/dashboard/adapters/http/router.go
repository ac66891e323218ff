// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"invoiceboard/internal/dashboard/adapters/http/auth"
	"invoiceboard/internal/dashboard/adapters/http/invoices"
	"invoiceboard/internal/dashboard/adapters/http/middleware"
	"invoiceboard/internal/dashboard/app"
	svc "invoiceboard/internal/dashboard/ports/services"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(fiberApp *fiber.App, actions *app.Actions, sessions svc.SessionService, cookieName string) {
	authHandler := auth.NewHandler(actions, cookieName)
	invoicesHandler := invoices.NewHandler(actions)

	// Middleware для всех запросов.
	fiberApp.Use(middleware.NewLoggerMiddleware())
	fiberApp.Use(middleware.NewRecoveryMiddleware())

	// Auth routes (публичные).
	authRoutes := fiberApp.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/logout", authHandler.Logout)

	// Маршруты панели (требуют сессии).
	dashboard := fiberApp.Group("/dashboard")
	dashboard.Use(middleware.NewSessionMiddleware(cookieName, sessions))

	invoiceRoutes := dashboard.Group("/invoices")
	invoiceRoutes.Post("/", invoicesHandler.Create)
	invoiceRoutes.Get("/", invoicesHandler.List)
	invoiceRoutes.Get("/:invoice_id", invoicesHandler.Get)
	invoiceRoutes.Post("/:invoice_id", invoicesHandler.Update)
	invoiceRoutes.Put("/:invoice_id", invoicesHandler.Update)
	invoiceRoutes.Delete("/:invoice_id", invoicesHandler.Delete)

	dashboard.Get("/customers", invoicesHandler.Customers)

	// Обработчик для несуществующих маршрутов.
	fiberApp.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
