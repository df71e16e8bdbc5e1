package seed_test

import (
	"context"
	"testing"

	"github.com/SscSPs/inventory_management_app/internal/adapters/database/memory"
	"github.com/SscSPs/inventory_management_app/internal/core/domain"
	"github.com/SscSPs/inventory_management_app/internal/core/services"
	"github.com/SscSPs/inventory_management_app/internal/seed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()
	container := services.NewServiceContainer(memory.NewRepositoryProvider(domain.DefaultActivityCapacity))

	require.NoError(t, seed.Load(ctx, container))

	products, err := container.Product.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)

	stock := make(map[string]int)
	for _, p := range products {
		stock[p.Code] = p.CurrentStock
	}
	assert.Equal(t, map[string]int{"A001": 50, "A002": 20, "B001": 12}, stock)

	suppliers, err := container.Supplier.ListSuppliers(ctx)
	require.NoError(t, err)
	assert.Len(t, suppliers, 2)

	customers, err := container.Customer.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 2)

	// Opening stock is booked as adjustments, so movements reconcile with current stock.
	adjustments, err := container.Inventory.ListAdjustments(ctx)
	require.NoError(t, err)
	require.Len(t, adjustments, 3)
	for _, a := range adjustments {
		assert.Equal(t, domain.AdjustSet, a.AdjustmentType)
		assert.Equal(t, "initial stock", a.Reason)
	}

	reorderList, err := container.Reorder.GetReorderList(ctx)
	require.NoError(t, err)
	assert.Len(t, reorderList, 2, "A002 and B001 are at or below their reorder point")

	stats, err := container.Reporting.GetStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.ProductCount)
	assert.Equal(t, 2, stats.LowStockCount)
	assert.True(t, decimal.RequireFromString("21710").Equal(stats.TotalInventoryValue))

	activities, err := container.Activity.ListActivities(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, activities, 10)
}

func TestLoad_TwiceFailsOnDuplicates(t *testing.T) {
	ctx := context.Background()
	container := services.NewServiceContainer(memory.NewRepositoryProvider(0))

	require.NoError(t, seed.Load(ctx, container))
	assert.Error(t, seed.Load(ctx, container))
}
