package domain_test

import (
	"testing"

	"github.com/SscSPs/inventory_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLineItem_Total(t *testing.T) {
	items := []domain.LineItem{
		{ProductID: "P0001", Quantity: 10, UnitPrice: decimal.NewFromInt(5)},
		{ProductID: "P0002", Quantity: 4, UnitPrice: decimal.NewFromInt(3)},
	}

	sum := decimal.Zero
	for _, li := range items {
		sum = sum.Add(li.Total())
	}
	assert.True(t, decimal.NewFromInt(62).Equal(sum), "got %s", sum)
}

func TestCloneItems(t *testing.T) {
	items := []domain.LineItem{{ProductID: "P0001", Quantity: 1}}
	cloned := domain.CloneItems(items)
	cloned[0].Quantity = 99

	assert.Equal(t, 1, items[0].Quantity)
	assert.Nil(t, domain.CloneItems(nil))
}

func TestAdjustment_Delta(t *testing.T) {
	adj := domain.InventoryAdjustment{OriginalStock: 50, NewStock: 35}
	assert.Equal(t, -15, adj.Delta())

	assert.True(t, domain.AdjustSet.IsValid())
	assert.False(t, domain.AdjustmentType("transfer").IsValid())
}
