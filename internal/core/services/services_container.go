package services

import (
	portsrepo "github.com/SscSPs/inventory_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/inventory_management_app/internal/core/ports/services"
)

// NewServiceContainer creates the services of one ledger. They share its repositories and lock.
func NewServiceContainer(repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	l := newLedger(repos, options...)
	base := BaseService{ledger: l}

	purchaseOrders := &purchaseOrderService{BaseService: base}

	return &portssvc.ServiceContainer{
		Product:       &productService{BaseService: base},
		Customer:      &customerService{BaseService: base},
		Supplier:      &supplierService{BaseService: base},
		PurchaseOrder: purchaseOrders,
		SalesOrder:    &salesOrderService{BaseService: base},
		Inventory:     &inventoryService{BaseService: base},
		Reorder:       &reorderService{BaseService: base, purchaseOrders: purchaseOrders},
		Reporting:     &reportingService{BaseService: base},
		Activity:      &activityService{BaseService: base},
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ProductSvcFacade       = (*productService)(nil)
	_ portssvc.CustomerSvcFacade      = (*customerService)(nil)
	_ portssvc.SupplierSvcFacade      = (*supplierService)(nil)
	_ portssvc.PurchaseOrderSvcFacade = (*purchaseOrderService)(nil)
	_ portssvc.SalesOrderSvcFacade    = (*salesOrderService)(nil)
	_ portssvc.InventorySvcFacade     = (*inventoryService)(nil)
	_ portssvc.ReorderSvcFacade       = (*reorderService)(nil)
	_ portssvc.ReportingService       = (*reportingService)(nil)
	_ portssvc.ActivitySvc            = (*activityService)(nil)
)
