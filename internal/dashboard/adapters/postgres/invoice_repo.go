package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"invoiceboard/internal/dashboard/domain/entities"
	"invoiceboard/internal/dashboard/ports/repositories"
	"invoiceboard/pkg/logger"
)

// InvoiceRepository реализует repositories.InvoiceRepository для Postgres.
type InvoiceRepository struct {
	pool PgxPoolInterface
}

// NewInvoiceRepository создает новый репозиторий счетов.
func NewInvoiceRepository(pool PgxPoolInterface) repositories.InvoiceRepository {
	return &InvoiceRepository{pool: pool}
}

// Create сохраняет новый счет. Сумма уже нормализована в центы,
// дата назначена оркестратором при создании.
func (r *InvoiceRepository) Create(ctx context.Context, invoice *entities.Invoice) (string, error) {
	log := logger.Log(ctx).With(zap.String("repository", "invoice"), zap.String("method", "Create"))

	var invoiceID string
	err := r.pool.QueryRow(ctx,
		`INSERT INTO invoices (customer_id, amount, status, date) VALUES ($1, $2, $3, $4) RETURNING id`,
		invoice.CustomerID, invoice.Amount, invoice.Status, invoice.Date,
	).Scan(&invoiceID)

	if err != nil {
		log.Error(ctx, "error creating invoice", zap.Error(err))
		return "", fmt.Errorf("error creating invoice: %w", err)
	}

	log.Debug(ctx, "invoice created", zap.String("invoiceID", invoiceID))
	return invoiceID, nil
}

// GetByID находит счет по идентификатору.
func (r *InvoiceRepository) GetByID(ctx context.Context, invoiceID string) (*entities.Invoice, error) {
	log := logger.Log(ctx).With(zap.String("repository", "invoice"), zap.String("method", "GetByID"))

	var invoice entities.Invoice
	err := r.pool.QueryRow(ctx,
		`SELECT id, customer_id, amount, status, date::text FROM invoices WHERE id = $1`,
		invoiceID,
	).Scan(&invoice.ID, &invoice.CustomerID, &invoice.Amount, &invoice.Status, &invoice.Date)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "invoice not found", zap.String("invoiceID", invoiceID))
			return nil, entities.ErrInvoiceNotFound
		}
		log.Error(ctx, "error finding invoice", zap.Error(err))
		return nil, fmt.Errorf("error querying invoice: %w", err)
	}

	return &invoice, nil
}

// Update изменяет customer_id, сумму и статус счета.
// Идентификатор и дата выставления не изменяются никогда.
func (r *InvoiceRepository) Update(ctx context.Context, invoice *entities.Invoice) error {
	log := logger.Log(ctx).With(zap.String("repository", "invoice"), zap.String("method", "Update"))

	result, err := r.pool.Exec(ctx,
		`UPDATE invoices SET customer_id = $1, amount = $2, status = $3 WHERE id = $4`,
		invoice.CustomerID, invoice.Amount, invoice.Status, invoice.ID,
	)
	if err != nil {
		log.Error(ctx, "error updating invoice", zap.Error(err))
		return fmt.Errorf("error updating invoice: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "invoice not found for update", zap.String("invoiceID", invoice.ID))
		return entities.ErrInvoiceNotFound
	}

	return nil
}

// Delete удаляет счет по идентификатору.
func (r *InvoiceRepository) Delete(ctx context.Context, invoiceID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "invoice"), zap.String("method", "Delete"))

	result, err := r.pool.Exec(ctx,
		`DELETE FROM invoices WHERE id = $1`,
		invoiceID,
	)
	if err != nil {
		log.Error(ctx, "error deleting invoice", zap.Error(err))
		return fmt.Errorf("error deleting invoice: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "invoice not found for deletion", zap.String("invoiceID", invoiceID))
		return entities.ErrInvoiceNotFound
	}

	return nil
}

// List возвращает все счета, новые первыми.
func (r *InvoiceRepository) List(ctx context.Context) ([]*entities.Invoice, error) {
	log := logger.Log(ctx).With(zap.String("repository", "invoice"), zap.String("method", "List"))

	rows, err := r.pool.Query(ctx,
		`SELECT id, customer_id, amount, status, date::text FROM invoices ORDER BY date DESC`,
	)
	if err != nil {
		log.Error(ctx, "error listing invoices", zap.Error(err))
		return nil, fmt.Errorf("error listing invoices: %w", err)
	}
	defer rows.Close()

	invoices := make([]*entities.Invoice, 0)
	for rows.Next() {
		var invoice entities.Invoice
		if err := rows.Scan(&invoice.ID, &invoice.CustomerID, &invoice.Amount, &invoice.Status, &invoice.Date); err != nil {
			log.Error(ctx, "error scanning invoice", zap.Error(err))
			return nil, fmt.Errorf("error scanning invoice: %w", err)
		}
		invoices = append(invoices, &invoice)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return invoices, nil
}
