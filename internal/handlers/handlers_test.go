package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/SscSPs/inventory_management_app/internal/adapters/database/memory"
	"github.com/SscSPs/inventory_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/inventory_management_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_management_app/internal/core/services"
	"github.com/SscSPs/inventory_management_app/internal/dto"
	"github.com/SscSPs/inventory_management_app/internal/handlers"
	"github.com/SscSPs/inventory_management_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type HandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	container *portssvc.ServiceContainer
}

func (s *HandlerTestSuite) SetupSuite() {
	binding.EnableDecoderDisallowUnknownFields = true
}

func (s *HandlerTestSuite) TearDownSuite() {
	binding.EnableDecoderDisallowUnknownFields = false
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.container = services.NewServiceContainer(
		memory.NewRepositoryProvider(domain.DefaultActivityCapacity),
		services.WithClock(func() time.Time { return testNow }),
	)
	s.router = gin.New()
	handlers.RegisterRoutes(s.router, &config.Config{IsProduction: true}, s.container)
}

func (s *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if raw, ok := body.(string); ok {
		reader = bytes.NewReader([]byte(raw))
	} else if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func (s *HandlerTestSuite) createProduct(code string, cost string) dto.ProductResponse {
	w := s.do(http.MethodPost, "/api/v1/products", dto.CreateProductRequest{
		Code:            code,
		Name:            "Product " + code,
		Unit:            "pcs",
		SalePrice:       decimal.RequireFromString("2.5"),
		CostPrice:       decimal.RequireFromString(cost),
		SafetyStock:     10,
		ReorderPoint:    40,
		ReorderQuantity: 100,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var res dto.ProductResponse
	s.decode(w, &res)
	return res
}

func (s *HandlerTestSuite) createSupplier(name string) domain.Supplier {
	w := s.do(http.MethodPost, "/api/v1/suppliers", dto.CreateSupplierRequest{Name: name})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var res domain.Supplier
	s.decode(w, &res)
	return res
}

func (s *HandlerTestSuite) setStock(productID string, qty int) {
	w := s.do(http.MethodPost, "/api/v1/inventory/adjustments", dto.AdjustInventoryRequest{
		ProductID:      productID,
		AdjustmentType: domain.AdjustSet,
		Quantity:       qty,
		Reason:         "initial stock",
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (s *HandlerTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *HandlerTestSuite) TestCreateProduct() {
	product := s.createProduct("A001", "1.8")
	s.Equal("P0001", product.ProductID)
	s.Equal(0, product.CurrentStock)

	s.Run("duplicate code is a conflict", func() {
		w := s.do(http.MethodPost, "/api/v1/products", dto.CreateProductRequest{Code: " a001 ", Name: "Other"})
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("unknown field is rejected", func() {
		w := s.do(http.MethodPost, "/api/v1/products", `{"code":"X1","name":"X","currentStock":5}`)
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("blank name fails validation", func() {
		w := s.do(http.MethodPost, "/api/v1/products", dto.CreateProductRequest{Code: "X2", Name: "   "})
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *HandlerTestSuite) TestGetProduct_NotFound() {
	w := s.do(http.MethodGet, "/api/v1/products/P99999", nil)
	s.Equal(http.StatusNotFound, w.Code)

	var res map[string]string
	s.decode(w, &res)
	s.Contains(res["error"], "P99999")
}

func (s *HandlerTestSuite) TestListProducts_Paging() {
	for _, code := range []string{"A001", "A002", "A003"} {
		s.createProduct(code, "1")
	}

	w := s.do(http.MethodGet, "/api/v1/products?limit=2", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var first dto.ListProductsResponse
	s.decode(w, &first)
	s.Require().Len(first.Products, 2)
	s.Require().NotNil(first.NextToken)

	w = s.do(http.MethodGet, "/api/v1/products?limit=2&nextToken="+url.QueryEscape(*first.NextToken), nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var second dto.ListProductsResponse
	s.decode(w, &second)
	s.Require().Len(second.Products, 1)
	s.Equal("A003", second.Products[0].Code)
	s.Nil(second.NextToken)

	w = s.do(http.MethodGet, "/api/v1/products?limit=0", nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/v1/products?q=a002", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var found dto.ListProductsResponse
	s.decode(w, &found)
	s.Require().Len(found.Products, 1)
	s.Equal("A002", found.Products[0].Code)
}

func (s *HandlerTestSuite) TestPurchaseOrderLifecycle() {
	product := s.createProduct("A001", "1.8")
	supplier := s.createSupplier("Acme")

	w := s.do(http.MethodPost, "/api/v1/purchase-orders", dto.CreatePurchaseOrderRequest{
		SupplierID: supplier.SupplierID,
		Items: []dto.LineItemRequest{
			{ProductID: product.ProductID, Quantity: 20, UnitPrice: decimal.RequireFromString("1.6")},
		},
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var order dto.PurchaseOrderResponse
	s.decode(w, &order)
	s.Equal("Acme", order.SupplierName)
	s.Equal(domain.PurchasePending, order.Status)
	s.True(decimal.RequireFromString("32").Equal(order.TotalAmount))

	w = s.do(http.MethodGet, "/api/v1/purchase-orders?status=pending", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var pending []dto.PurchaseOrderResponse
	s.decode(w, &pending)
	s.Len(pending, 1)

	w = s.do(http.MethodPost, "/api/v1/purchase-orders/"+order.PurchaseOrderID+"/receive", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/v1/purchase-orders/"+order.PurchaseOrderID+"/receive", nil)
	s.Equal(http.StatusConflict, w.Code)

	w = s.do(http.MethodGet, "/api/v1/products/"+product.ProductID, nil)
	var received dto.ProductResponse
	s.decode(w, &received)
	s.Equal(20, received.CurrentStock)
	s.True(decimal.RequireFromString("1.6").Equal(received.CostPrice))

	// Deleting the supplier leaves the order readable under an unknown name.
	w = s.do(http.MethodDelete, "/api/v1/suppliers/"+supplier.SupplierID, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	w = s.do(http.MethodGet, "/api/v1/purchase-orders/"+order.PurchaseOrderID, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &order)
	s.Equal(dto.UnknownName, order.SupplierName)

	w = s.do(http.MethodGet, "/api/v1/purchase-orders?status=archived", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestCreateSalesOrder_InsufficientStock() {
	product := s.createProduct("A001", "1.8")
	s.setStock(product.ProductID, 5)

	w := s.do(http.MethodPost, "/api/v1/sales-orders", dto.CreateSalesOrderRequest{
		Items: []dto.LineItemRequest{
			{ProductID: product.ProductID, Quantity: 3, UnitPrice: decimal.RequireFromString("2.5")},
			{ProductID: product.ProductID, Quantity: 3, UnitPrice: decimal.RequireFromString("2.5")},
		},
	})
	s.Require().Equal(http.StatusUnprocessableEntity, w.Code, w.Body.String())

	var res handlers.InsufficientStockResponse
	s.decode(w, &res)
	s.Equal(product.ProductID, res.ProductID)
	s.Equal(5, res.Available)
	s.Equal(6, res.Requested)

	w = s.do(http.MethodGet, "/api/v1/sales-orders", nil)
	var orders []dto.SalesOrderResponse
	s.decode(w, &orders)
	s.Empty(orders)
}

func (s *HandlerTestSuite) TestCreateSalesOrder_QuantityAboveBound() {
	product := s.createProduct("A001", "1.8")
	s.setStock(product.ProductID, 5)

	w := s.do(http.MethodPost, "/api/v1/sales-orders", dto.CreateSalesOrderRequest{
		Items: []dto.LineItemRequest{
			{ProductID: product.ProductID, Quantity: domain.MaxQuantity + 1, UnitPrice: decimal.RequireFromString("2.5")},
		},
	})
	s.Equal(http.StatusBadRequest, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/v1/products/"+product.ProductID, nil)
	var after dto.ProductResponse
	s.decode(w, &after)
	s.Equal(5, after.CurrentStock)
}

func (s *HandlerTestSuite) TestCreateSalesOrder_WalkIn() {
	product := s.createProduct("A001", "1.8")
	s.setStock(product.ProductID, 50)

	w := s.do(http.MethodPost, "/api/v1/sales-orders", dto.CreateSalesOrderRequest{
		Items: []dto.LineItemRequest{
			{ProductID: product.ProductID, Quantity: 15, UnitPrice: decimal.RequireFromString("2.5")},
		},
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var order dto.SalesOrderResponse
	s.decode(w, &order)
	s.Nil(order.CustomerID)
	s.Empty(order.CustomerName)
	s.Equal(domain.SalesShipped, order.Status)

	w = s.do(http.MethodGet, "/api/v1/products/"+product.ProductID+"/movements", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var report domain.ProductMovementReport
	s.decode(w, &report)
	s.Equal(35, report.NetMovement)
	s.Len(report.Movements, 2)
}

func (s *HandlerTestSuite) TestAdjustments() {
	product := s.createProduct("A001", "1.8")
	s.setStock(product.ProductID, 10)

	w := s.do(http.MethodPost, "/api/v1/inventory/adjustments", dto.AdjustInventoryRequest{
		ProductID:      product.ProductID,
		AdjustmentType: domain.AdjustDecrease,
		Quantity:       11,
		Reason:         "damaged",
	})
	s.Equal(http.StatusUnprocessableEntity, w.Code)

	w = s.do(http.MethodGet, "/api/v1/inventory/adjustments?productID="+product.ProductID, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var adjustments []domain.InventoryAdjustment
	s.decode(w, &adjustments)
	s.Len(adjustments, 1)
}

func (s *HandlerTestSuite) TestReorderFlow() {
	product := s.createProduct("A001", "1.8")
	supplier := s.createSupplier("Acme")
	s.setStock(product.ProductID, 30)

	w := s.do(http.MethodGet, "/api/v1/reorder/list", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var list []domain.ReorderInfo
	s.decode(w, &list)
	s.Len(list, 1)

	w = s.do(http.MethodPost, "/api/v1/products/"+product.ProductID+"/quick-reorder", dto.QuickReorderRequest{SupplierID: supplier.SupplierID})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var order dto.PurchaseOrderResponse
	s.decode(w, &order)
	s.Equal("Acme", order.SupplierName)
	s.Require().Len(order.Items, 1)
	s.Equal(100, order.Items[0].Quantity)

	w = s.do(http.MethodGet, "/api/v1/products/"+product.ProductID+"/reorder-suggestion", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestReports() {
	product := s.createProduct("A001", "1.8")
	s.setStock(product.ProductID, 50)

	w := s.do(http.MethodGet, "/api/v1/reports/transactions?startDate=2026-03-01&endDate=2026-03-01", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var report dto.TransactionReportResponse
	s.decode(w, &report)
	s.Equal(1, report.Summary.AdjustmentCount)

	w = s.do(http.MethodGet, "/api/v1/reports/transactions?startDate=03/01/2026", nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/v1/reports/transactions?startDate=2026-03-02&endDate=2026-03-01", nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/v1/reports/statistics", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var stats dto.StatisticsResponse
	s.decode(w, &stats)
	s.Equal(1, stats.ProductCount)
	s.True(decimal.RequireFromString("90").Equal(stats.TotalInventoryValue))

	w = s.do(http.MethodGet, "/api/v1/activities?limit=1", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var activities []domain.Activity
	s.decode(w, &activities)
	s.Require().Len(activities, 1)
	s.Equal(domain.ActivityInventory, activities[0].Type)
}

func (s *HandlerTestSuite) TestCustomerSalesStats() {
	w := s.do(http.MethodPost, "/api/v1/customers", dto.CreateCustomerRequest{Name: "Riverside", Email: "not-an-email"})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/v1/customers", dto.CreateCustomerRequest{Name: "Riverside"})
	s.Require().Equal(http.StatusCreated, w.Code)
	var customer domain.Customer
	s.decode(w, &customer)

	w = s.do(http.MethodGet, "/api/v1/customers/"+customer.CustomerID+"/sales-stats", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var stats domain.CustomerSalesStats
	s.decode(w, &stats)
	s.Equal(0, stats.TotalOrders)

	w = s.do(http.MethodGet, "/api/v1/customers?q=river", nil)
	var customers []domain.Customer
	s.decode(w, &customers)
	s.Len(customers, 1)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

// MockReportingService is a mock implementation of portssvc.ReportingService
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TransactionReport(ctx context.Context, start, end time.Time) (*domain.TransactionReport, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionReport), args.Error(1)
}

func (m *MockReportingService) ProductMovementReport(ctx context.Context, productID string, start, end *time.Time) (*domain.ProductMovementReport, error) {
	args := m.Called(ctx, productID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductMovementReport), args.Error(1)
}

func (m *MockReportingService) InventoryReport(ctx context.Context) (*domain.InventoryReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryReport), args.Error(1)
}

func (m *MockReportingService) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

func TestStatistics_UnexpectedErrorIs500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reporting := new(MockReportingService)
	reporting.On("GetStatistics", mock.Anything).Return(nil, errors.New("boom"))

	container := services.NewServiceContainer(memory.NewRepositoryProvider(0))
	container.Reporting = reporting

	router := gin.New()
	handlers.RegisterRoutes(router, &config.Config{IsProduction: true}, container)

	req, err := http.NewRequest(http.MethodGet, "/api/v1/reports/statistics", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var res map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "Failed to compute statistics", res["error"])
	reporting.AssertExpectations(t)
}

func TestAPIMiddlewareAppliesToV1Only(t *testing.T) {
	gin.SetMode(gin.TestMode)
	container := services.NewServiceContainer(memory.NewRepositoryProvider(0))
	router := gin.New()
	handlers.RegisterRoutes(router, &config.Config{IsProduction: true}, container, func(c *gin.Context) {
		c.AbortWithStatus(http.StatusTeapot)
	})

	for path, want := range map[string]int{"/health": http.StatusOK, "/api/v1/": http.StatusTeapot} {
		req, err := http.NewRequest(http.MethodGet, path, nil)
		require.NoError(t, err)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, path)
	}
}

func TestRegisterRoutes_LeavesDecoderSettingsAlone(t *testing.T) {
	gin.SetMode(gin.TestMode)
	previous := binding.EnableDecoderDisallowUnknownFields
	binding.EnableDecoderDisallowUnknownFields = false
	defer func() { binding.EnableDecoderDisallowUnknownFields = previous }()

	container := services.NewServiceContainer(memory.NewRepositoryProvider(0))
	handlers.RegisterRoutes(gin.New(), &config.Config{IsProduction: true}, container)

	assert.False(t, binding.EnableDecoderDisallowUnknownFields)
}

func TestSwaggerDocListsAPIRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	container := services.NewServiceContainer(memory.NewRepositoryProvider(0))
	router := gin.New()
	handlers.RegisterRoutes(router, &config.Config{IsProduction: false}, container)

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		BasePath    string                    `json:"basePath"`
		Paths       map[string]map[string]any `json:"paths"`
		Definitions map[string]any            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc), w.Body.String())
	assert.Equal(t, "/api/v1", doc.BasePath)
	assert.Contains(t, doc.Paths["/sales-orders"], "post")
	assert.Contains(t, doc.Paths["/purchase-orders/{id}/receive"], "post")
	assert.Contains(t, doc.Paths["/inventory/adjustments"], "get")
	assert.Contains(t, doc.Definitions, "dto.LineItemRequest")
}
