package repositories

import (
	"context"

	"github.com/SscSPs/inventory_management_app/internal/core/domain"
)

// PurchaseOrderRepositoryFacade defines storage for purchase orders.
type PurchaseOrderRepositoryFacade interface {
	// FindPurchaseOrderByID retrieves a specific purchase order.
	FindPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error)

	// ListPurchaseOrders retrieves all purchase orders in creation order.
	ListPurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error)

	// SavePurchaseOrder persists a new purchase order.
	SavePurchaseOrder(ctx context.Context, order domain.PurchaseOrder) error

	// UpdatePurchaseOrder replaces an existing purchase order (status transitions).
	UpdatePurchaseOrder(ctx context.Context, order domain.PurchaseOrder) error
}

// SalesOrderRepositoryFacade defines storage for sales orders.
type SalesOrderRepositoryFacade interface {
	// FindSalesOrderByID retrieves a specific sales order.
	FindSalesOrderByID(ctx context.Context, salesOrderID string) (*domain.SalesOrder, error)

	// ListSalesOrders retrieves all sales orders in creation order.
	ListSalesOrders(ctx context.Context) ([]domain.SalesOrder, error)

	// SaveSalesOrder persists a new sales order.
	SaveSalesOrder(ctx context.Context, order domain.SalesOrder) error
}
