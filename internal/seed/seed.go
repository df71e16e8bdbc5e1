// Package seed loads the sample catalog used for demos and local development.
// Everything goes through the ledger services, so activities and adjustments
// are recorded exactly as if a user had entered the data.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/inventory_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/inventory_management_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_management_app/internal/dto"
	"github.com/SscSPs/inventory_management_app/internal/middleware"
	"github.com/shopspring/decimal"
)

const initialStockReason = "initial stock"

type sampleProduct struct {
	req   dto.CreateProductRequest
	stock int
}

var sampleSuppliers = []dto.CreateSupplierRequest{
	{Name: "Acme Hardware Supply", Contact: "Wang Li", Phone: "021-5550100", Email: "sales@acme-hardware.example", Address: "12 Harbor Road"},
	{Name: "Northwind Tools", Contact: "Chen Mei", Phone: "021-5550200", Email: "orders@northwind-tools.example", Address: "88 Industrial Park"},
}

var sampleCustomers = []dto.CreateCustomerRequest{
	{Name: "Riverside Construction", Contact: "Zhang Wei", Phone: "021-5550300", Email: "purchasing@riverside.example", Address: "5 River Street"},
	{Name: "Greenfield Workshop", Contact: "Liu Yang", Phone: "021-5550400", Email: "office@greenfield.example", Address: "301 Garden Avenue"},
}

var sampleProducts = []sampleProduct{
	{
		req: dto.CreateProductRequest{
			Code: "A001", Name: "Screw", Spec: "M6x20 stainless", Unit: "pcs",
			SalePrice: decimal.RequireFromString("2.5"), CostPrice: decimal.RequireFromString("1.8"),
			SafetyStock: 100, ReorderPoint: 40, ReorderQuantity: 100,
		},
		stock: 50,
	},
	{
		req: dto.CreateProductRequest{
			Code: "A002", Name: "Nail", Spec: "50mm galvanized", Unit: "pcs",
			SalePrice: decimal.RequireFromString("1.5"), CostPrice: decimal.RequireFromString("1.0"),
			SafetyStock: 200, ReorderPoint: 30, ReorderQuantity: 80,
		},
		stock: 20,
	},
	{
		req: dto.CreateProductRequest{
			Code: "B001", Name: "Electric Drill", Spec: "18V cordless", Unit: "set",
			SalePrice: decimal.RequireFromString("2500"), CostPrice: decimal.RequireFromString("1800"),
			SafetyStock: 5, ReorderPoint: 50, ReorderQuantity: 200,
		},
		stock: 12,
	},
}

// Load creates the sample suppliers, customers and products and sets their opening stock.
func Load(ctx context.Context, services *portssvc.ServiceContainer) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	for _, req := range sampleSuppliers {
		if _, err := services.Supplier.CreateSupplier(ctx, req); err != nil {
			return fmt.Errorf("seed supplier %q: %w", req.Name, err)
		}
	}
	for _, req := range sampleCustomers {
		if _, err := services.Customer.CreateCustomer(ctx, req); err != nil {
			return fmt.Errorf("seed customer %q: %w", req.Name, err)
		}
	}
	for _, sp := range sampleProducts {
		product, err := services.Product.CreateProduct(ctx, sp.req)
		if err != nil {
			return fmt.Errorf("seed product %s: %w", sp.req.Code, err)
		}
		_, err = services.Inventory.AdjustInventory(ctx, dto.AdjustInventoryRequest{
			ProductID:      product.ProductID,
			AdjustmentType: domain.AdjustSet,
			Quantity:       sp.stock,
			Reason:         initialStockReason,
		})
		if err != nil {
			return fmt.Errorf("seed stock for %s: %w", sp.req.Code, err)
		}
	}

	logger.Info("Sample data loaded",
		slog.Int("suppliers", len(sampleSuppliers)),
		slog.Int("customers", len(sampleCustomers)),
		slog.Int("products", len(sampleProducts)))
	return nil
}
