package repositories

import (
	"context"

	"invoiceboard/internal/dashboard/domain/entities"
)

// CustomerRepository определяет интерфейс чтения справочника клиентов.
// Записи клиентов этим сервисом не изменяются.
type CustomerRepository interface {
	List(ctx context.Context) ([]*entities.Customer, error)
}
