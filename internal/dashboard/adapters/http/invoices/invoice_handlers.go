// Package invoices содержит HTTP обработчики операций со счетами.
package invoices

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"invoiceboard/internal/dashboard/app"
	"invoiceboard/internal/dashboard/domain/entities"
	"invoiceboard/pkg/logger"
)

// Константы для логирования и сообщений об ошибках.
const (
	LogHandlerCreate    = "invoices handler: create"
	LogHandlerUpdate    = "invoices handler: update"
	LogHandlerDelete    = "invoices handler: delete"
	LogHandlerList      = "invoices handler: list"
	LogHandlerGet       = "invoices handler: get"
	LogHandlerCustomers = "invoices handler: customers"

	ParamInvoiceID = "invoice_id"

	ErrMsgInvoiceNotFound = "Invoice not found."
	ErrMsgLoadInvoices    = "Failed to load invoices."
	ErrMsgLoadCustomers   = "Failed to load customers."
)

// Handler содержит HTTP обработчики счетов и клиентов.
type Handler struct {
	actions *app.Actions
}

// NewHandler создает новый экземпляр обработчика счетов.
func NewHandler(actions *app.Actions) *Handler {
	return &Handler{actions: actions}
}

// Create обрабатывает отправку формы создания счета.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreate)

	result := h.actions.CreateInvoice(requestCtx, invoiceForm(ctx))

	return respond(ctx, result)
}

// Update обрабатывает отправку формы редактирования счета.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdate)

	invoiceID := ctx.Params(ParamInvoiceID)
	result := h.actions.UpdateInvoice(requestCtx, invoiceID, invoiceForm(ctx))

	return respond(ctx, result)
}

// Delete удаляет счет по идентификатору из пути запроса.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDelete)

	invoiceID := ctx.Params(ParamInvoiceID)
	result := h.actions.DeleteInvoice(requestCtx, invoiceID)

	return respond(ctx, result)
}

// List возвращает все счета, используя кэшированное представление.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerList)

	invoices, err := h.actions.ListInvoices(requestCtx)
	if err != nil {
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrMsgLoadInvoices)
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{"invoices": invoices}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}

	return nil
}

// Get возвращает один счет для формы редактирования.
func (h *Handler) Get(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGet)

	invoiceID := ctx.Params(ParamInvoiceID)

	invoice, err := h.actions.GetInvoice(requestCtx, invoiceID)
	if err != nil {
		if errors.Is(err, entities.ErrInvoiceNotFound) {
			return sendErrorResponse(ctx, http.StatusNotFound, ErrMsgInvoiceNotFound)
		}

		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrMsgLoadInvoices)
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{"invoice": invoice}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}

	return nil
}

// Customers возвращает список клиентов для выпадающего списка формы.
func (h *Handler) Customers(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCustomers)

	customers, err := h.actions.ListCustomers(requestCtx)
	if err != nil {
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrMsgLoadCustomers)
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{"customers": customers}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}

	return nil
}

// invoiceForm собирает поля формы счета из тела запроса.
func invoiceForm(ctx fiber.Ctx) map[string]string {
	return map[string]string{
		app.FieldCustomerID: ctx.FormValue(app.FieldCustomerID),
		app.FieldAmount:     ctx.FormValue(app.FieldAmount),
		app.FieldStatus:     ctx.FormValue(app.FieldStatus),
	}
}

// respond переводит результат действия в HTTP ответ.
func respond(ctx fiber.Ctx, result *app.ActionResult) error {
	switch result.Status {
	case app.StatusOK:
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
		if err := ctx.Status(http.StatusInternalServerError).JSON(result); err != nil {
			return fmt.Errorf("sending response: %w", err)
		}
		return nil
	}
}

// sendErrorResponse отправляет ответ с ошибкой.
func sendErrorResponse(ctx fiber.Ctx, status int, message string) error {
	if err := ctx.Status(status).JSON(fiber.Map{"error": message}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}

	return nil
}
