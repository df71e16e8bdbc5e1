package domain_test

import (
	"testing"

	"github.com/SscSPs/inventory_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProduct_IsLowStock(t *testing.T) {
	tests := []struct {
		name   string
		stock  int
		safety int
		want   bool
	}{
		{name: "above safety stock", stock: 50, safety: 40, want: false},
		{name: "equal to safety stock", stock: 40, safety: 40, want: true},
		{name: "below safety stock", stock: 35, safety: 40, want: true},
		{name: "zero and zero", stock: 0, safety: 0, want: true},
		{name: "negative stock", stock: -1, safety: 0, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.Product{CurrentStock: tt.stock, SafetyStock: tt.safety}
			assert.Equal(t, tt.want, p.IsLowStock())
		})
	}
}

func TestProduct_NeedsReorder(t *testing.T) {
	tests := []struct {
		name  string
		stock int
		rop   int
		want  bool
	}{
		{name: "above reorder point", stock: 50, rop: 40, want: false},
		{name: "at reorder point", stock: 30, rop: 30, want: true},
		{name: "below reorder point", stock: 12, rop: 50, want: true},
		{name: "zero reorder point with zero stock", stock: 0, rop: 0, want: true},
		{name: "zero reorder point with stock", stock: 1, rop: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.Product{CurrentStock: tt.stock, ReorderPoint: tt.rop}
			assert.Equal(t, tt.want, p.NeedsReorder())
		})
	}
}

func TestProduct_ReorderInfo(t *testing.T) {
	p := domain.Product{
		ProductID:       "P0002",
		Code:            "A002",
		Name:            "Nail",
		CurrentStock:    20,
		ReorderPoint:    30,
		ReorderQuantity: 80,
		CostPrice:       decimal.NewFromFloat(1.0),
	}

	info := p.ReorderInfo()
	assert.Equal(t, "P0002", info.ProductID)
	assert.Equal(t, 80, info.SuggestedQuantity)
	assert.True(t, info.NeedsReorder)

	p.ReorderQuantity = 0
	assert.Equal(t, 0, p.ReorderInfo().SuggestedQuantity)
}

func TestProduct_StockValue(t *testing.T) {
	p := domain.Product{CurrentStock: 12, CostPrice: decimal.RequireFromString("1800")}
	assert.True(t, decimal.NewFromInt(21600).Equal(p.StockValue()))
}
