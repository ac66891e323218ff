package postgres_test

import (
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoiceboard/internal/dashboard/adapters/postgres"
)

func TestCustomerRepository_List(t *testing.T) {
	ctx := testContext(t)

	t.Run("Список клиентов в алфавитном порядке", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT .+ FROM customers ORDER BY name ASC").
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "name", "email", "image_url"}).
					AddRow("customer-1", "Acme Corp", "billing@acme.test", "/customers/acme.png").
					AddRow("customer-2", "Globex", "billing@globex.test", ""),
			)

		repo := postgres.NewCustomerRepository(mock)
		customers, err := repo.List(ctx)

		require.NoError(t, err)
		require.Len(t, customers, 2)
		assert.Equal(t, "Acme Corp", customers[0].Name)
		assert.Equal(t, "Globex", customers[1].Name)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка БД при чтении списка", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT .+ FROM customers ORDER BY name ASC").
			WillReturnError(errors.New("database connection error"))

		repo := postgres.NewCustomerRepository(mock)
		customers, err := repo.List(ctx)

		assert.Nil(t, customers)
		require.Error(t, err)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
