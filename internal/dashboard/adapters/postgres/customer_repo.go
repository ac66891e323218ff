package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"invoiceboard/internal/dashboard/domain/entities"
	"invoiceboard/internal/dashboard/ports/repositories"
	"invoiceboard/pkg/logger"
)

// CustomerRepository реализует repositories.CustomerRepository для Postgres.
// Таблица клиентов этим сервисом только читается.
type CustomerRepository struct {
	pool PgxPoolInterface
}

// NewCustomerRepository создает новый репозиторий клиентов.
func NewCustomerRepository(pool PgxPoolInterface) repositories.CustomerRepository {
	return &CustomerRepository{pool: pool}
}

// List возвращает всех клиентов в алфавитном порядке.
func (r *CustomerRepository) List(ctx context.Context) ([]*entities.Customer, error) {
	log := logger.Log(ctx).With(zap.String("repository", "customer"), zap.String("method", "List"))

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, image_url FROM customers ORDER BY name ASC`,
	)
	if err != nil {
		log.Error(ctx, "error listing customers", zap.Error(err))
		return nil, fmt.Errorf("error listing customers: %w", err)
	}
	defer rows.Close()

	customers := make([]*entities.Customer, 0)
	for rows.Next() {
		var customer entities.Customer
		if err := rows.Scan(&customer.ID, &customer.Name, &customer.Email, &customer.ImageURL); err != nil {
			log.Error(ctx, "error scanning customer", zap.Error(err))
			return nil, fmt.Errorf("error scanning customer: %w", err)
		}
		customers = append(customers, &customer)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return customers, nil
}
