package exchange_test

import (
	"testing"

	"bourse/internal/common"
	"bourse/internal/exchange"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStock_Validation(t *testing.T) {
	_, err := exchange.NewStock("", 10, 999)
	assert.ErrorIs(t, err, exchange.ErrWrongObjectType)

	_, err = exchange.NewStock("stock1", 10, 0)
	assert.ErrorIs(t, err, exchange.ErrWrongObjectType)

	_, err = exchange.NewStock("stock1", 10, -1)
	assert.ErrorIs(t, err, exchange.ErrWrongObjectType)

	// A sold-out stock is a legal state, also at construction.
	stock, err := exchange.NewStock("stock1", 0, 999)
	require.NoError(t, err)
	assert.Zero(t, stock.Quantity())
}

func TestHasAvailableQuantity(t *testing.T) {
	stock, err := exchange.NewStock("stock1", 10, 999)
	require.NoError(t, err)

	assert.True(t, stock.HasAvailableQuantity(10))
	assert.True(t, stock.HasAvailableQuantity(0))
	assert.False(t, stock.HasAvailableQuantity(11))
}

func TestApply(t *testing.T) {
	stock, err := exchange.NewStock("stock1", 10, 999)
	require.NoError(t, err)

	require.NoError(t, stock.Apply(common.Buy, 4))
	assert.Equal(t, uint64(6), stock.Quantity())

	require.NoError(t, stock.Apply(common.Sell, 5))
	assert.Equal(t, uint64(11), stock.Quantity())

	// A buy past the remaining inventory fails without mutating.
	assert.ErrorIs(t, stock.Apply(common.Buy, 12), exchange.ErrWrongStockQuantity)
	assert.Equal(t, uint64(11), stock.Quantity())

	assert.ErrorIs(t, stock.Apply(common.Side(42), 1), exchange.ErrWrongStockType)
	assert.Equal(t, uint64(11), stock.Quantity())
}
