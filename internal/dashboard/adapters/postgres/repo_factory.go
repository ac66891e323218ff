package postgres

import (
	"invoiceboard/internal/dashboard/ports/repositories"
)

// RepositoryFactory создает репозитории для работы с базой данных.
type RepositoryFactory struct {
	pool         PgxPoolInterface
	userRepo     repositories.UserRepository
	invoiceRepo  repositories.InvoiceRepository
	customerRepo repositories.CustomerRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{pool: pool}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	if f.userRepo == nil {
		f.userRepo = NewUserRepository(f.pool)
	}
	return f.userRepo
}

// InvoiceRepository возвращает репозиторий счетов.
func (f *RepositoryFactory) InvoiceRepository() repositories.InvoiceRepository {
	if f.invoiceRepo == nil {
		f.invoiceRepo = NewInvoiceRepository(f.pool)
	}
	return f.invoiceRepo
}

// CustomerRepository возвращает репозиторий клиентов.
func (f *RepositoryFactory) CustomerRepository() repositories.CustomerRepository {
	if f.customerRepo == nil {
		f.customerRepo = NewCustomerRepository(f.pool)
	}
	return f.customerRepo
}
