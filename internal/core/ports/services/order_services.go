package services

import (
	"context"

	"github.com/SscSPs/inventory_management_app/internal/core/domain"
	"github.com/SscSPs/inventory_management_app/internal/dto"
)

// PurchaseOrderSvcFacade defines the purchase order lifecycle: pending, then received.
type PurchaseOrderSvcFacade interface {
	// CreatePurchaseOrder records a pending order. Stock is not touched.
	CreatePurchaseOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest) (*domain.PurchaseOrder, error)

	// ReceivePurchaseOrder books the goods into stock and sets each product's cost price
	// to the received unit price. Fails with apperrors.ErrAlreadyProcessed on a second call.
	ReceivePurchaseOrder(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error)

	GetPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error)
	ListPurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error)
	ListPendingPurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error)
}

// SalesOrderSvcFacade defines sales order operations.
// Orders are shipped on creation; stock is checked for every line before any is deducted.
type SalesOrderSvcFacade interface {
	CreateSalesOrder(ctx context.Context, req dto.CreateSalesOrderRequest) (*domain.SalesOrder, error)
	GetSalesOrderByID(ctx context.Context, salesOrderID string) (*domain.SalesOrder, error)
	ListSalesOrders(ctx context.Context) ([]domain.SalesOrder, error)
}
