package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStock(t *testing.T) {
	stock, err := NewStock(uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.True(t, stock.MinQuantity.IsZero())

	_, err = NewStock(uuid.Nil, uuid.New())
	assert.Error(t, err)
	_, err = NewStock(uuid.New(), uuid.Nil)
	assert.Error(t, err)
}

func TestStock_SetThresholds(t *testing.T) {
	stock, err := NewStock(uuid.New(), uuid.New())
	require.NoError(t, err)

	require.NoError(t, stock.SetThresholds(decimal.NewFromInt(5), decimal.NewFromInt(100)))
	assert.Equal(t, 2, stock.Version)

	assert.Error(t, stock.SetThresholds(decimal.NewFromInt(-1), decimal.Zero))
	assert.Error(t, stock.SetThresholds(decimal.NewFromInt(50), decimal.NewFromInt(10)))
}

func TestStock_IsBelowMinimum(t *testing.T) {
	stock, err := NewStock(uuid.New(), uuid.New())
	require.NoError(t, err)
	require.NoError(t, stock.SetThresholds(decimal.NewFromInt(5), decimal.NewFromInt(100)))

	assert.True(t, stock.IsBelowMinimum(decimal.NewFromInt(3)))
	assert.False(t, stock.IsBelowMinimum(decimal.NewFromInt(5)))
}

func TestItemStock_CanFulfill(t *testing.T) {
	itemStock, err := NewItemStock(uuid.New(), decimal.NewFromInt(10))
	require.NoError(t, err)

	assert.True(t, itemStock.CanFulfill(decimal.NewFromInt(7)))
	assert.True(t, itemStock.CanFulfill(decimal.NewFromInt(10)))
	assert.False(t, itemStock.CanFulfill(decimal.NewFromInt(11)))
}

func TestNewItemStock_Negative(t *testing.T) {
	_, err := NewItemStock(uuid.New(), decimal.NewFromInt(-1))
	assert.Error(t, err)
}
