package services

import (
	"context"

	"github.com/SscSPs/inventory_management_app/internal/core/domain"
	"github.com/SscSPs/inventory_management_app/internal/dto"
)

// InventorySvcFacade defines manual stock corrections and their log.
type InventorySvcFacade interface {
	// AdjustInventory applies an increase, decrease or set and records the adjustment.
	AdjustInventory(ctx context.Context, req dto.AdjustInventoryRequest) (*dto.AdjustInventoryResult, error)

	ListAdjustments(ctx context.Context) ([]domain.InventoryAdjustment, error)
	ListAdjustmentsByProduct(ctx context.Context, productID string) ([]domain.InventoryAdjustment, error)
}

// ReorderSvcFacade defines the reorder-point helper.
type ReorderSvcFacade interface {
	// GetReorderList returns every product at or below its reorder point.
	GetReorderList(ctx context.Context) ([]domain.ReorderInfo, error)

	// GenerateReorderReport totals the estimated cost of the reorder list.
	GenerateReorderReport(ctx context.Context) (*domain.ReorderReport, error)

	// UpdateReorderSettings changes the reorder point and/or quantity of a product.
	UpdateReorderSettings(ctx context.Context, productID string, req dto.UpdateReorderSettingsRequest) (*domain.Product, error)

	// GetReorderSuggestion derives reorder settings from the product's safety stock.
	GetReorderSuggestion(ctx context.Context, productID string) (*domain.ReorderSuggestion, error)

	// QuickReorder raises a pending purchase order for the product's reorder quantity at cost.
	QuickReorder(ctx context.Context, productID string, supplierID string) (*domain.PurchaseOrder, error)
}
