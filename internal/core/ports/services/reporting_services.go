package services

import (
	"context"
	"time"

	"github.com/SscSPs/inventory_management_app/internal/core/domain"
)

// ReportingService defines read-only aggregations over the ledger.
type ReportingService interface {
	// TransactionReport collects received purchases, sales and adjustments within [start, end].
	TransactionReport(ctx context.Context, start, end time.Time) (*domain.TransactionReport, error)

	// ProductMovementReport merges all stock movements of one product in date order.
	// Nil bounds leave that side of the range open.
	ProductMovementReport(ctx context.Context, productID string, start, end *time.Time) (*domain.ProductMovementReport, error)

	// InventoryReport values every product's stock at cost.
	InventoryReport(ctx context.Context) (*domain.InventoryReport, error)

	// GetStatistics returns the dashboard figures.
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}

// ActivitySvc exposes the activity feed.
type ActivitySvc interface {
	// ListActivities returns up to limit activities, newest first. limit <= 0 returns all retained.
	ListActivities(ctx context.Context, limit int) ([]domain.Activity, error)

	// Subscribe delivers activities recorded after the call until ctx is done, then closes the channel.
	// Slow receivers miss events rather than blocking the ledger.
	Subscribe(ctx context.Context) <-chan domain.Activity
}
