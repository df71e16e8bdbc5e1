package services

// ServiceContainer holds instances of all the application services.
// All services of one container share a single ledger and its lock,
// so they are used throughout the handlers as one consistent unit.
type ServiceContainer struct {
	Product       ProductSvcFacade
	Customer      CustomerSvcFacade
	Supplier      SupplierSvcFacade
	PurchaseOrder PurchaseOrderSvcFacade
	SalesOrder    SalesOrderSvcFacade
	Inventory     InventorySvcFacade
	Reorder       ReorderSvcFacade
	Reporting     ReportingService
	Activity      ActivitySvc
}
