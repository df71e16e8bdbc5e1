package domain

import "github.com/shopspring/decimal"

// Product is a catalog entry together with its stock position and reorder settings.
// CurrentStock is only changed by purchase receipts, sales and inventory adjustments.
type Product struct {
	ProductID       string          `json:"productID"`
	Code            string          `json:"code"` // Unique business key
	Name            string          `json:"name"`
	Spec            string          `json:"spec"`
	Unit            string          `json:"unit"`
	SalePrice       decimal.Decimal `json:"salePrice"`
	CostPrice       decimal.Decimal `json:"costPrice"`
	CurrentStock    int             `json:"currentStock"`
	SafetyStock     int             `json:"safetyStock"`
	ReorderPoint    int             `json:"reorderPoint"`
	ReorderQuantity int             `json:"reorderQuantity"` // 0 means no suggestion configured
	Timestamps
}

// IsLowStock reports whether stock is at or below the safety stock.
func (p Product) IsLowStock() bool {
	return p.CurrentStock <= p.SafetyStock
}

// NeedsReorder reports whether stock is at or below the reorder point.
func (p Product) NeedsReorder() bool {
	return p.CurrentStock <= p.ReorderPoint
}

// StockValue is the current stock valued at cost price.
func (p Product) StockValue() decimal.Decimal {
	return p.CostPrice.Mul(decimal.NewFromInt(int64(p.CurrentStock)))
}

// SuggestedReorderQuantity returns the configured reorder quantity, or 0 when none is set.
func (p Product) SuggestedReorderQuantity() int {
	if p.ReorderQuantity < 0 {
		return 0
	}
	return p.ReorderQuantity
}

// ReorderInfo builds the reorder list row for this product.
func (p Product) ReorderInfo() ReorderInfo {
	return ReorderInfo{
		ProductID:         p.ProductID,
		Code:              p.Code,
		Name:              p.Name,
		Unit:              p.Unit,
		CurrentStock:      p.CurrentStock,
		ReorderPoint:      p.ReorderPoint,
		SuggestedQuantity: p.SuggestedReorderQuantity(),
		CostPrice:         p.CostPrice,
		NeedsReorder:      p.NeedsReorder(),
	}
}
