package services_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/SscSPs/inventory_management_app/internal/adapters/database/memory"
	"github.com/SscSPs/inventory_management_app/internal/apperrors"
	"github.com/SscSPs/inventory_management_app/internal/core/domain"
	"github.com/SscSPs/inventory_management_app/internal/core/services"
	"github.com/SscSPs/inventory_management_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock type for the ProductRepositoryFacade interface
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductByCode(ctx context.Context, code string) (*domain.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProductsPage(ctx context.Context, limit int, nextToken *string) ([]domain.Product, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Product), args.Get(1).(*string), args.Error(2)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func TestCreateProduct_SaveFailureRecordsNoActivity(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProductRepository)
	dbErr := errors.New("disk full")

	repo.On("FindProductByCode", mock.Anything, "A001").Return(nil, apperrors.ErrNotFound)
	repo.On("SaveProduct", mock.Anything, mock.AnythingOfType("domain.Product")).Return(dbErr)

	repos := memory.NewRepositoryProvider(domain.DefaultActivityCapacity)
	repos.ProductRepo = repo
	svc := services.NewServiceContainer(repos)

	_, err := svc.Product.CreateProduct(ctx, dto.CreateProductRequest{Code: "A001", Name: "Screw"})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)

	activities, err := svc.Activity.ListActivities(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, activities)
	repo.AssertExpectations(t)
}

func TestInventoryReport_PropagatesRepositoryError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProductRepository)
	dbErr := errors.New("connection reset")
	repo.On("ListProducts", mock.Anything).Return(nil, dbErr)

	repos := memory.NewRepositoryProvider(domain.DefaultActivityCapacity)
	repos.ProductRepo = repo
	svc := services.NewServiceContainer(repos)

	_, err := svc.Reporting.InventoryReport(ctx)
	assert.ErrorIs(t, err, dbErr)

	_, err = svc.Reorder.GetReorderList(ctx)
	assert.ErrorIs(t, err, dbErr)
	repo.AssertExpectations(t)
}

func TestAdjustInventory_UpdateFailureWritesNoAdjustment(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProductRepository)
	dbErr := errors.New("write conflict")
	product := &domain.Product{ProductID: "P0001", Name: "Screw", CurrentStock: 5}

	repo.On("FindProductByID", mock.Anything, "P0001").Return(product, nil)
	repo.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(p domain.Product) bool { return p.CurrentStock == 8 })).Return(dbErr)

	repos := memory.NewRepositoryProvider(domain.DefaultActivityCapacity)
	repos.ProductRepo = repo
	svc := services.NewServiceContainer(repos)

	_, err := svc.Inventory.AdjustInventory(ctx, dto.AdjustInventoryRequest{
		ProductID: "P0001", AdjustmentType: domain.AdjustIncrease, Quantity: 3, Reason: "recount",
	})
	assert.ErrorIs(t, err, dbErr)

	adjustments, err := svc.Inventory.ListAdjustments(ctx)
	require.NoError(t, err)
	assert.Empty(t, adjustments)
	repo.AssertExpectations(t)
}

// MockSalesOrderRepository is a mock type for the SalesOrderRepositoryFacade interface
type MockSalesOrderRepository struct {
	mock.Mock
}

func (m *MockSalesOrderRepository) FindSalesOrderByID(ctx context.Context, salesOrderID string) (*domain.SalesOrder, error) {
	args := m.Called(ctx, salesOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) ListSalesOrders(ctx context.Context) ([]domain.SalesOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) SaveSalesOrder(ctx context.Context, order domain.SalesOrder) error {
	return m.Called(ctx, order).Error(0)
}

// MockAdjustmentRepository is a mock type for the AdjustmentRepository interface
type MockAdjustmentRepository struct {
	mock.Mock
}

func (m *MockAdjustmentRepository) AppendAdjustment(ctx context.Context, adjustment domain.InventoryAdjustment) error {
	return m.Called(ctx, adjustment).Error(0)
}

func (m *MockAdjustmentRepository) ListAdjustments(ctx context.Context) ([]domain.InventoryAdjustment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryAdjustment), args.Error(1)
}

func (m *MockAdjustmentRepository) ListAdjustmentsByProduct(ctx context.Context, productID string) ([]domain.InventoryAdjustment, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryAdjustment), args.Error(1)
}

func productWithStock(id string, stock int) func(domain.Product) bool {
	return func(p domain.Product) bool { return p.ProductID == id && p.CurrentStock == stock }
}

func TestAdjustInventory_IncreaseOverflowIsRejected(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProductRepository)
	repo.On("FindProductByID", mock.Anything, "P0001").Return(&domain.Product{ProductID: "P0001", CurrentStock: math.MaxInt - 2}, nil)

	repos := memory.NewRepositoryProvider(domain.DefaultActivityCapacity)
	repos.ProductRepo = repo
	svc := services.NewServiceContainer(repos)

	_, err := svc.Inventory.AdjustInventory(ctx, dto.AdjustInventoryRequest{
		ProductID: "P0001", AdjustmentType: domain.AdjustIncrease, Quantity: 5, Reason: "recount",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything)

	adjustments, err := svc.Inventory.ListAdjustments(ctx)
	require.NoError(t, err)
	assert.Empty(t, adjustments)
}

func TestReceivePurchaseOrder_OverflowLeavesOrderPending(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProductRepository)
	repo.On("FindProductByID", mock.Anything, "P0001").Return(&domain.Product{ProductID: "P0001", CurrentStock: math.MaxInt - 3}, nil)

	repos := memory.NewRepositoryProvider(domain.DefaultActivityCapacity)
	repos.ProductRepo = repo
	svc := services.NewServiceContainer(repos)

	supplier, err := svc.Supplier.CreateSupplier(ctx, dto.CreateSupplierRequest{Name: "Bolt Supply"})
	require.NoError(t, err)
	po, err := svc.PurchaseOrder.CreatePurchaseOrder(ctx, dto.CreatePurchaseOrderRequest{
		SupplierID: supplier.SupplierID,
		Items:      []dto.LineItemRequest{{ProductID: "P0001", Quantity: 10, UnitPrice: decimal.NewFromInt(1)}},
	})
	require.NoError(t, err)

	_, err = svc.PurchaseOrder.ReceivePurchaseOrder(ctx, po.PurchaseOrderID)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything)

	pending, err := svc.PurchaseOrder.ListPendingPurchaseOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestCreateSalesOrder_FailedStockWriteRestoresEarlierProducts(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProductRepository)
	dbErr := errors.New("write conflict")

	repo.On("FindProductByID", mock.Anything, "P0001").Return(&domain.Product{ProductID: "P0001", CurrentStock: 10}, nil)
	repo.On("FindProductByID", mock.Anything, "P0002").Return(&domain.Product{ProductID: "P0002", CurrentStock: 10}, nil)
	repo.On("UpdateProduct", mock.Anything, mock.MatchedBy(productWithStock("P0001", 7))).Return(nil).Once()
	repo.On("UpdateProduct", mock.Anything, mock.MatchedBy(productWithStock("P0002", 8))).Return(dbErr).Once()
	repo.On("UpdateProduct", mock.Anything, mock.MatchedBy(productWithStock("P0001", 10))).Return(nil).Once()

	repos := memory.NewRepositoryProvider(domain.DefaultActivityCapacity)
	repos.ProductRepo = repo
	svc := services.NewServiceContainer(repos)

	_, err := svc.SalesOrder.CreateSalesOrder(ctx, dto.CreateSalesOrderRequest{
		Items: []dto.LineItemRequest{
			{ProductID: "P0001", Quantity: 3, UnitPrice: decimal.NewFromInt(1)},
			{ProductID: "P0002", Quantity: 2, UnitPrice: decimal.NewFromInt(1)},
		},
	})
	assert.ErrorIs(t, err, dbErr)

	orders, err := svc.SalesOrder.ListSalesOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
	activities, err := svc.Activity.ListActivities(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, activities)
	repo.AssertExpectations(t)
}

func TestCreateSalesOrder_SaveFailureRestoresStock(t *testing.T) {
	ctx := context.Background()
	orders := new(MockSalesOrderRepository)
	dbErr := errors.New("disk full")
	orders.On("SaveSalesOrder", mock.Anything, mock.AnythingOfType("domain.SalesOrder")).Return(dbErr)

	repos := memory.NewRepositoryProvider(domain.DefaultActivityCapacity)
	repos.SalesOrderRepo = orders
	svc := services.NewServiceContainer(repos)

	product, err := svc.Product.CreateProduct(ctx, dto.CreateProductRequest{Code: "A001", Name: "Screw"})
	require.NoError(t, err)
	_, err = svc.Inventory.AdjustInventory(ctx, dto.AdjustInventoryRequest{
		ProductID: product.ProductID, AdjustmentType: domain.AdjustSet, Quantity: 50, Reason: "initial stock",
	})
	require.NoError(t, err)

	_, err = svc.SalesOrder.CreateSalesOrder(ctx, dto.CreateSalesOrderRequest{
		Items: []dto.LineItemRequest{{ProductID: product.ProductID, Quantity: 15, UnitPrice: decimal.NewFromInt(2)}},
	})
	assert.ErrorIs(t, err, dbErr)

	after, err := svc.Product.GetProductByID(ctx, product.ProductID)
	require.NoError(t, err)
	assert.Equal(t, 50, after.CurrentStock)
	orders.AssertExpectations(t)
}

func TestAdjustInventory_AppendFailureRestoresStock(t *testing.T) {
	ctx := context.Background()
	adjustments := new(MockAdjustmentRepository)
	dbErr := errors.New("disk full")
	adjustments.On("AppendAdjustment", mock.Anything, mock.AnythingOfType("domain.InventoryAdjustment")).Return(dbErr)

	repos := memory.NewRepositoryProvider(domain.DefaultActivityCapacity)
	repos.AdjustmentRepo = adjustments
	svc := services.NewServiceContainer(repos)

	product, err := svc.Product.CreateProduct(ctx, dto.CreateProductRequest{Code: "A001", Name: "Screw"})
	require.NoError(t, err)

	_, err = svc.Inventory.AdjustInventory(ctx, dto.AdjustInventoryRequest{
		ProductID: product.ProductID, AdjustmentType: domain.AdjustIncrease, Quantity: 4, Reason: "found in back room",
	})
	assert.ErrorIs(t, err, dbErr)

	after, err := svc.Product.GetProductByID(ctx, product.ProductID)
	require.NoError(t, err)
	assert.Equal(t, 0, after.CurrentStock)
	adjustments.AssertExpectations(t)
}
