package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shippinglabs/cdek/entities"
)

func TestCurrencyCode(t *testing.T) {
	t.Parallel()

	t.Run("string code maps to integer", func(t *testing.T) {
		t.Parallel()

		code, err := entities.CurrencyCode("RUB")
		require.NoError(t, err)
		assert.Equal(t, 1, code)
	})

	t.Run("known integer passes through", func(t *testing.T) {
		t.Parallel()

		code, err := entities.CurrencyCode(1)
		require.NoError(t, err)
		assert.Equal(t, 1, code)
	})

	t.Run("non-sequential code", func(t *testing.T) {
		t.Parallel()

		code, err := entities.CurrencyCode("JPY")
		require.NoError(t, err)
		assert.Equal(t, 55, code)
	})

	t.Run("unknown string fails", func(t *testing.T) {
		t.Parallel()

		_, err := entities.CurrencyCode("XXX")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid currency code: XXX")
	})

	t.Run("unknown integer fails", func(t *testing.T) {
		t.Parallel()

		_, err := entities.CurrencyCode(999)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid currency code")
	})

	t.Run("unsupported type fails", func(t *testing.T) {
		t.Parallel()

		_, err := entities.CurrencyCode(1.5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid currency code")
	})
}
