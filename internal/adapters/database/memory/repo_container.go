package memory

import (
	portsrepo "github.com/SscSPs/inventory_management_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires a fresh, empty set of in-memory repositories.
func NewRepositoryProvider(activityCapacity int) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProductRepo:       NewProductRepository(),
		CustomerRepo:      NewCustomerRepository(),
		SupplierRepo:      NewSupplierRepository(),
		PurchaseOrderRepo: NewPurchaseOrderRepository(),
		SalesOrderRepo:    NewSalesOrderRepository(),
		AdjustmentRepo:    NewAdjustmentRepository(),
		ActivityRepo:      NewActivityRepository(activityCapacity),
	}
}
