package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/inventory_management_app/internal/apperrors"
	"github.com/SscSPs/inventory_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/inventory_management_app/internal/core/ports/repositories"
)

// PurchaseOrderRepository keeps purchase orders keyed by id.
// Line items are copied on the way in and out.
type PurchaseOrderRepository struct {
	orders *table[domain.PurchaseOrder]
}

func NewPurchaseOrderRepository() *PurchaseOrderRepository {
	return &PurchaseOrderRepository{orders: newTable[domain.PurchaseOrder]()}
}

var _ portsrepo.PurchaseOrderRepositoryFacade = (*PurchaseOrderRepository)(nil)

func clonePurchaseOrder(po domain.PurchaseOrder) domain.PurchaseOrder {
	po.Items = domain.CloneItems(po.Items)
	if po.ReceivedDate != nil {
		received := *po.ReceivedDate
		po.ReceivedDate = &received
	}
	return po
}

func (r *PurchaseOrderRepository) SavePurchaseOrder(ctx context.Context, order domain.PurchaseOrder) error {
	if !r.orders.insert(order.PurchaseOrderID, clonePurchaseOrder(order)) {
		return fmt.Errorf("%w: purchase order with ID %s already exists", apperrors.ErrDuplicate, order.PurchaseOrderID)
	}
	return nil
}

func (r *PurchaseOrderRepository) UpdatePurchaseOrder(ctx context.Context, order domain.PurchaseOrder) error {
	if !r.orders.replace(order.PurchaseOrderID, clonePurchaseOrder(order)) {
		return fmt.Errorf("%w: purchase order %s", apperrors.ErrNotFound, order.PurchaseOrderID)
	}
	return nil
}

func (r *PurchaseOrderRepository) FindPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	order, ok := r.orders.get(purchaseOrderID)
	if !ok {
		return nil, fmt.Errorf("%w: purchase order %s", apperrors.ErrNotFound, purchaseOrderID)
	}
	order = clonePurchaseOrder(order)
	return &order, nil
}

func (r *PurchaseOrderRepository) ListPurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error) {
	orders := r.orders.all()
	for i := range orders {
		orders[i] = clonePurchaseOrder(orders[i])
	}
	return orders, nil
}

// SalesOrderRepository keeps sales orders keyed by id.
type SalesOrderRepository struct {
	orders *table[domain.SalesOrder]
}

func NewSalesOrderRepository() *SalesOrderRepository {
	return &SalesOrderRepository{orders: newTable[domain.SalesOrder]()}
}

var _ portsrepo.SalesOrderRepositoryFacade = (*SalesOrderRepository)(nil)

func cloneSalesOrder(so domain.SalesOrder) domain.SalesOrder {
	so.Items = domain.CloneItems(so.Items)
	if so.CustomerID != nil {
		customerID := *so.CustomerID
		so.CustomerID = &customerID
	}
	if so.ShippedDate != nil {
		shipped := *so.ShippedDate
		so.ShippedDate = &shipped
	}
	return so
}

func (r *SalesOrderRepository) SaveSalesOrder(ctx context.Context, order domain.SalesOrder) error {
	if !r.orders.insert(order.SalesOrderID, cloneSalesOrder(order)) {
		return fmt.Errorf("%w: sales order with ID %s already exists", apperrors.ErrDuplicate, order.SalesOrderID)
	}
	return nil
}

func (r *SalesOrderRepository) FindSalesOrderByID(ctx context.Context, salesOrderID string) (*domain.SalesOrder, error) {
	order, ok := r.orders.get(salesOrderID)
	if !ok {
		return nil, fmt.Errorf("%w: sales order %s", apperrors.ErrNotFound, salesOrderID)
	}
	order = cloneSalesOrder(order)
	return &order, nil
}

func (r *SalesOrderRepository) ListSalesOrders(ctx context.Context) ([]domain.SalesOrder, error) {
	orders := r.orders.all()
	for i := range orders {
		orders[i] = cloneSalesOrder(orders[i])
	}
	return orders, nil
}
