package exchange_test

import (
	"testing"

	"bourse/internal/exchange"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Duplicate(t *testing.T) {
	registry := exchange.NewRegistry()
	first := registerStock(t, registry, "stock1", 10, 999)

	second, err := exchange.NewStock("stock1", 5, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, registry.Register(second), exchange.ErrDuplicateStock)

	// The first registration must be unaffected by the rejected one.
	got, ok := registry.Lookup("stock1")
	require.True(t, ok)
	assert.Same(t, first, got)
	assert.Equal(t, uint64(10), got.Quantity())
	assert.Equal(t, 1, registry.Len())
}

func TestRegister_Nil(t *testing.T) {
	registry := exchange.NewRegistry()
	assert.ErrorIs(t, registry.Register(nil), exchange.ErrWrongObjectType)
	assert.Zero(t, registry.Len())
}

func TestLookup_Miss(t *testing.T) {
	registry := exchange.NewRegistry()
	_, ok := registry.Lookup("nonexistent")
	assert.False(t, ok)
}

func TestList_NameOrder(t *testing.T) {
	registry := exchange.NewRegistry()
	for _, name := range []string{"carrot", "apple", "banana"} {
		registerStock(t, registry, name, 1, 1)
	}

	var names []string
	for _, stock := range registry.List() {
		names = append(names, stock.Name())
	}
	assert.Equal(t, []string{"apple", "banana", "carrot"}, names)
	assert.Equal(t, "Total stocks available 3", registry.String())
}
