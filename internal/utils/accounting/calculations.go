package accounting

import (
	"fmt"
	"math"

	"github.com/SscSPs/inventory_management_app/internal/apperrors"
	"github.com/SscSPs/inventory_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateOrderTotal sums Quantity × UnitPrice over all line items.
func CalculateOrderTotal(items []domain.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Total())
	}
	return total
}

// CalculateReorderCost estimates the cost of reordering qty units at costPrice.
func CalculateReorderCost(qty int, costPrice decimal.Decimal) decimal.Decimal {
	if qty <= 0 {
		return decimal.Zero
	}
	return costPrice.Mul(decimal.NewFromInt(int64(qty)))
}

// AddQuantity returns stock + qty, or an ErrValidation wrap when the sum does not fit in an int.
func AddQuantity(stock, qty int) (int, error) {
	if (qty > 0 && stock > math.MaxInt-qty) || (qty < 0 && stock < math.MinInt-qty) {
		return 0, fmt.Errorf("%w: quantity %d on top of %d is out of range", apperrors.ErrValidation, qty, stock)
	}
	return stock + qty, nil
}

// AggregateQuantities totals the requested quantity per product, preserving first-seen order.
// Totals that would overflow are rejected with ErrValidation.
func AggregateQuantities(items []domain.LineItem) (map[string]int, []string, error) {
	totals := make(map[string]int, len(items))
	order := make([]string, 0, len(items))
	for _, item := range items {
		if _, seen := totals[item.ProductID]; !seen {
			order = append(order, item.ProductID)
		}
		total, err := AddQuantity(totals[item.ProductID], item.Quantity)
		if err != nil {
			return nil, nil, fmt.Errorf("product %s: %w", item.ProductID, err)
		}
		totals[item.ProductID] = total
	}
	return totals, order, nil
}

// SuggestReorderSettings derives a reorder point and quantity from the safety stock:
// ROP = round(max(safety × 1.2, 10)), quantity = round(max(safety × 2, 50)).
func SuggestReorderSettings(safetyStock int) (reorderPoint int, reorderQuantity int) {
	rop := math.Max(float64(safetyStock)*1.2, 10)
	qty := math.Max(float64(safetyStock)*2, 50)
	return int(math.Floor(rop + 0.5)), int(math.Floor(qty + 0.5))
}
