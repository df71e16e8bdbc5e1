package accounting_test

import (
	"math"
	"testing"

	"github.com/SscSPs/inventory_management_app/internal/apperrors"
	"github.com/SscSPs/inventory_management_app/internal/core/domain"
	"github.com/SscSPs/inventory_management_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateOrderTotal(t *testing.T) {
	items := []domain.LineItem{
		{ProductID: "P1", Quantity: 10, UnitPrice: decimal.NewFromInt(5)},
		{ProductID: "P2", Quantity: 4, UnitPrice: decimal.NewFromInt(3)},
	}
	assert.True(t, decimal.NewFromInt(62).Equal(accounting.CalculateOrderTotal(items)))
	assert.True(t, decimal.Zero.Equal(accounting.CalculateOrderTotal(nil)))
}

func TestCalculateReorderCost(t *testing.T) {
	assert.True(t, decimal.NewFromInt(160).Equal(accounting.CalculateReorderCost(80, decimal.NewFromInt(2))))
	assert.True(t, decimal.Zero.Equal(accounting.CalculateReorderCost(0, decimal.NewFromInt(2))))
}

func TestAggregateQuantities(t *testing.T) {
	totals, order, err := accounting.AggregateQuantities([]domain.LineItem{
		{ProductID: "P2", Quantity: 1},
		{ProductID: "P1", Quantity: 2},
		{ProductID: "P2", Quantity: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"P1": 2, "P2": 4}, totals)
	assert.Equal(t, []string{"P2", "P1"}, order)
}

func TestAggregateQuantities_OverflowIsRejected(t *testing.T) {
	_, _, err := accounting.AggregateQuantities([]domain.LineItem{
		{ProductID: "P1", Quantity: math.MaxInt},
		{ProductID: "P1", Quantity: math.MaxInt},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "P1")
}

func TestAddQuantity(t *testing.T) {
	tests := []struct {
		name    string
		stock   int
		qty     int
		want    int
		wantErr bool
	}{
		{name: "plain sum", stock: 5, qty: 3, want: 8},
		{name: "exactly max int", stock: math.MaxInt - 3, qty: 3, want: math.MaxInt},
		{name: "past max int", stock: math.MaxInt - 2, qty: 3, wantErr: true},
		{name: "negative delta", stock: 5, qty: -7, want: -2},
		{name: "past min int", stock: math.MinInt + 1, qty: -2, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := accounting.AddQuantity(tt.stock, tt.qty)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggestReorderSettings(t *testing.T) {
	tests := []struct {
		name    string
		safety  int
		wantROP int
		wantQty int
	}{
		{name: "zero safety stock uses floors", safety: 0, wantROP: 10, wantQty: 50},
		{name: "large safety stock scales", safety: 100, wantROP: 120, wantQty: 200},
		{name: "exact multiple", safety: 15, wantROP: 18, wantQty: 50},
		{name: "fractional rop", safety: 11, wantROP: 13, wantQty: 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rop, qty := accounting.SuggestReorderSettings(tt.safety)
			assert.Equal(t, tt.wantROP, rop)
			assert.Equal(t, tt.wantQty, qty)
		})
	}
}
