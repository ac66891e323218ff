package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	adapters "invoiceboard/internal/dashboard/adapters/services"
	"invoiceboard/internal/dashboard/domain/services"
)

func TestServiceBcrypt_Hash(t *testing.T) {
	ctx := context.Background()
	svc := adapters.NewBcrypt(bcrypt.MinCost)

	t.Run("Успешное хэширование пароля", func(t *testing.T) {
		hash, err := svc.Hash(ctx, "secret123")

		require.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "secret123", hash)
	})

	t.Run("Пустой пароль отклоняется", func(t *testing.T) {
		hash, err := svc.Hash(ctx, "")

		assert.Empty(t, hash)
		assert.ErrorIs(t, err, services.ErrInvalidPassword)
	})

	t.Run("Короткий пароль отклоняется", func(t *testing.T) {
		hash, err := svc.Hash(ctx, "12345")

		assert.Empty(t, hash)
		assert.ErrorIs(t, err, services.ErrInvalidPassword)
	})

	t.Run("Одинаковые пароли дают разные хэши", func(t *testing.T) {
		first, err := svc.Hash(ctx, "secret123")
		require.NoError(t, err)

		second, err := svc.Hash(ctx, "secret123")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}

func TestServiceBcrypt_Verify(t *testing.T) {
	ctx := context.Background()
	svc := adapters.NewBcrypt(bcrypt.MinCost)

	hash, err := svc.Hash(ctx, "secret123")
	require.NoError(t, err)

	t.Run("Правильный пароль проходит проверку", func(t *testing.T) {
		valid, err := svc.Verify(ctx, "secret123", hash)

		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("Неправильный пароль не проходит без ошибки", func(t *testing.T) {
		valid, err := svc.Verify(ctx, "wrong-password", hash)

		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("Пустые аргументы отклоняются", func(t *testing.T) {
		valid, err := svc.Verify(ctx, "", hash)
		assert.False(t, valid)
		assert.ErrorIs(t, err, services.ErrInvalidPassword)

		valid, err = svc.Verify(ctx, "secret123", "")
		assert.False(t, valid)
		assert.ErrorIs(t, err, services.ErrInvalidPassword)
	})

	t.Run("Искаженный хэш дает ошибку", func(t *testing.T) {
		valid, err := svc.Verify(ctx, "secret123", "not-a-bcrypt-hash")

		assert.False(t, valid)
		require.Error(t, err)
	})
}
