package repositories

import (
	"context"

	"github.com/SscSPs/inventory_management_app/internal/core/domain"
)

// AdjustmentRepository is the append-only log of inventory adjustments.
type AdjustmentRepository interface {
	// AppendAdjustment records a new adjustment. Records are never modified afterwards.
	AppendAdjustment(ctx context.Context, adjustment domain.InventoryAdjustment) error

	// ListAdjustments retrieves all adjustments in the order they were recorded.
	ListAdjustments(ctx context.Context) ([]domain.InventoryAdjustment, error)

	// ListAdjustmentsByProduct retrieves the adjustments of one product in recorded order.
	ListAdjustmentsByProduct(ctx context.Context, productID string) ([]domain.InventoryAdjustment, error)
}

// ActivityRepository is the capped activity feed.
type ActivityRepository interface {
	// AppendActivity records an activity, evicting the oldest entry when the feed is full.
	AppendActivity(ctx context.Context, activity domain.Activity) error

	// ListRecentActivities returns up to limit activities, newest first. limit <= 0 returns all.
	ListRecentActivities(ctx context.Context, limit int) ([]domain.Activity, error)
}
