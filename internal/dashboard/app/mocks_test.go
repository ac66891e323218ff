package app_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"invoiceboard/internal/dashboard/domain/entities"
	"invoiceboard/internal/dashboard/domain/services"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

type mockInvoiceRepository struct {
	mock.Mock
}

func (m *mockInvoiceRepository) Create(ctx context.Context, invoice *entities.Invoice) (string, error) {
	args := m.Called(ctx, invoice)
	return args.String(0), args.Error(1)
}

func (m *mockInvoiceRepository) GetByID(ctx context.Context, invoiceID string) (*entities.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Invoice), args.Error(1)
}

func (m *mockInvoiceRepository) List(ctx context.Context) ([]*entities.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Invoice), args.Error(1)
}

func (m *mockInvoiceRepository) Update(ctx context.Context, invoice *entities.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *mockInvoiceRepository) Delete(ctx context.Context, invoiceID string) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

type mockCustomerRepository struct {
	mock.Mock
}

func (m *mockCustomerRepository) List(ctx context.Context) ([]*entities.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Customer), args.Error(1)
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) Verify(ctx context.Context, password, hash string) (bool, error) {
	args := m.Called(ctx, password, hash)
	return args.Bool(0), args.Error(1)
}

type mockSessionService struct {
	mock.Mock
}

func (m *mockSessionService) Establish(ctx context.Context, userID, email string) (*services.Session, error) {
	args := m.Called(ctx, userID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Session), args.Error(1)
}

func (m *mockSessionService) Verify(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

type mockViewCache struct {
	mock.Mock
}

func (m *mockViewCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockViewCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *mockViewCache) Invalidate(ctx context.Context, prefix string) error {
	args := m.Called(ctx, prefix)
	return args.Error(0)
}

func (m *mockViewCache) Close() error {
	args := m.Called()
	return args.Error(0)
}
