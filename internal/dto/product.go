package dto

import (
	"time"

	"github.com/SscSPs/inventory_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to create a new product.
// Stock always starts at zero; use purchase receipts or adjustments to change it.
type CreateProductRequest struct {
	Code            string          `json:"code" validate:"required,notblank,max=64"`
	Name            string          `json:"name" validate:"required,notblank,max=200"`
	Spec            string          `json:"spec" validate:"max=500"`
	Unit            string          `json:"unit" validate:"max=32"`
	SalePrice       decimal.Decimal `json:"salePrice"`
	CostPrice       decimal.Decimal `json:"costPrice"`
	SafetyStock     int             `json:"safetyStock" validate:"gte=0"`
	ReorderPoint    int             `json:"reorderPoint" validate:"gte=0"`
	ReorderQuantity int             `json:"reorderQuantity" validate:"gte=0,lte=1000000"`
}

// UpdateProductRequest defines the data allowed for updating a product.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateProductRequest struct {
	Code            *string          `json:"code" validate:"omitempty,notblank,max=64"`
	Name            *string          `json:"name" validate:"omitempty,notblank,max=200"`
	Spec            *string          `json:"spec" validate:"omitempty,max=500"`
	Unit            *string          `json:"unit" validate:"omitempty,max=32"`
	SalePrice       *decimal.Decimal `json:"salePrice"`
	CostPrice       *decimal.Decimal `json:"costPrice"`
	SafetyStock     *int             `json:"safetyStock" validate:"omitempty,gte=0"`
	ReorderPoint    *int             `json:"reorderPoint" validate:"omitempty,gte=0"`
	ReorderQuantity *int             `json:"reorderQuantity" validate:"omitempty,gte=0,lte=1000000"`
}

// UpdateReorderSettingsRequest changes only the reorder point and/or quantity of a product.
type UpdateReorderSettingsRequest struct {
	ReorderPoint    *int `json:"reorderPoint" validate:"omitempty,gte=0"`
	ReorderQuantity *int `json:"reorderQuantity" validate:"omitempty,gte=0,lte=1000000"`
}

// QuickReorderRequest names the supplier for a purchase order raised from the reorder list.
type QuickReorderRequest struct {
	SupplierID string `json:"supplierID" validate:"required"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID       string          `json:"productID"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Spec            string          `json:"spec"`
	Unit            string          `json:"unit"`
	SalePrice       decimal.Decimal `json:"salePrice"`
	CostPrice       decimal.Decimal `json:"costPrice"`
	CurrentStock    int             `json:"currentStock"`
	SafetyStock     int             `json:"safetyStock"`
	ReorderPoint    int             `json:"reorderPoint"`
	ReorderQuantity int             `json:"reorderQuantity"`
	StockValue      decimal.Decimal `json:"stockValue"`
	IsLowStock      bool            `json:"isLowStock"`
	NeedsReorder    bool            `json:"needsReorder"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// ListProductsParams defines query parameters for listing products.
type ListProductsParams struct {
	Query     string  `form:"q"`
	Limit     int     `form:"limit,default=50" validate:"gte=1,lte=500"`
	NextToken *string `form:"nextToken"`
}

// ListProductsResponse wraps a page of products.
type ListProductsResponse struct {
	Products  []ProductResponse `json:"products"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:       p.ProductID,
		Code:            p.Code,
		Name:            p.Name,
		Spec:            p.Spec,
		Unit:            p.Unit,
		SalePrice:       p.SalePrice,
		CostPrice:       p.CostPrice,
		CurrentStock:    p.CurrentStock,
		SafetyStock:     p.SafetyStock,
		ReorderPoint:    p.ReorderPoint,
		ReorderQuantity: p.ReorderQuantity,
		StockValue:      p.StockValue(),
		IsLowStock:      p.IsLowStock(),
		NeedsReorder:    p.NeedsReorder(),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ToListProductResponse converts a slice of domain.Product to a slice of ProductResponse DTOs
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}
