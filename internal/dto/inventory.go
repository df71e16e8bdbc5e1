package dto

import "github.com/SscSPs/inventory_management_app/internal/core/domain"

// AdjustInventoryRequest defines a manual stock correction.
type AdjustInventoryRequest struct {
	ProductID      string                `json:"productID" validate:"required"`
	AdjustmentType domain.AdjustmentType `json:"adjustmentType" validate:"required"`
	Quantity       int                   `json:"quantity" validate:"gte=0,lte=1000000"`
	Reason         string                `json:"reason" validate:"required,notblank,max=500"`
}

// AdjustInventoryResult is the product after the adjustment plus the recorded adjustment.
type AdjustInventoryResult struct {
	Product    domain.Product             `json:"product"`
	Adjustment domain.InventoryAdjustment `json:"adjustment"`
}

// AdjustInventoryResponse defines the data returned for an adjustment.
type AdjustInventoryResponse struct {
	Product    ProductResponse            `json:"product"`
	Adjustment domain.InventoryAdjustment `json:"adjustment"`
}

// ListAdjustmentsParams filters the adjustment log.
type ListAdjustmentsParams struct {
	ProductID string `form:"productID"`
}

// ToAdjustInventoryResponse converts the service result to its DTO.
func ToAdjustInventoryResponse(res *AdjustInventoryResult) AdjustInventoryResponse {
	return AdjustInventoryResponse{
		Product:    ToProductResponse(&res.Product),
		Adjustment: res.Adjustment,
	}
}
