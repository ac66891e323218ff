package repositories

import (
	"context"

	"invoiceboard/internal/dashboard/domain/entities"
)

// InvoiceRepository определяет интерфейс для операций над счетами.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entities.Invoice) (string, error)

	GetByID(ctx context.Context, invoiceID string) (*entities.Invoice, error)

	List(ctx context.Context) ([]*entities.Invoice, error)

	Update(ctx context.Context, invoice *entities.Invoice) error

	Delete(ctx context.Context, invoiceID string) error
}
