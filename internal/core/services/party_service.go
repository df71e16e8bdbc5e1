package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/inventory_management_app/internal/apperrors"
	"github.com/SscSPs/inventory_management_app/internal/core/domain"
	"github.com/SscSPs/inventory_management_app/internal/dto"
	"github.com/SscSPs/inventory_management_app/internal/utils"
	"github.com/SscSPs/inventory_management_app/internal/utils/idgen"
	"github.com/shopspring/decimal"
)

// applyPartyUpdate copies the optional fields of an update request onto a customer or supplier.
func applyPartyUpdate(req dto.UpdatePartyRequest, name, contact, phone, email, address *string) {
	if req.Name != nil {
		*name = strings.TrimSpace(*req.Name)
	}
	if req.Contact != nil {
		*contact = *req.Contact
	}
	if req.Phone != nil {
		*phone = *req.Phone
	}
	if req.Email != nil {
		*email = *req.Email
	}
	if req.Address != nil {
		*address = *req.Address
	}
}

type customerService struct {
	BaseService
}

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	name := strings.TrimSpace(req.Name)
	if err := s.ensureNameAvailable(ctx, name, ""); err != nil {
		return nil, err
	}

	customer := domain.Customer{
		CustomerID: s.ledger.ids.Next(idgen.Customer),
		Name:       name,
		Contact:    req.Contact,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		Timestamps: domain.NewTimestamps(s.ledger.now()),
	}
	if err := s.ledger.repos.CustomerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("customer_id", customer.CustomerID))
		return nil, err
	}

	s.ledger.record(ctx, domain.ActivityCustomer, customer.CustomerID, "Added customer %s", customer.Name)
	return &customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	customer, err := s.ledger.repos.CustomerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find customer for update", slog.String("customer_id", customerID))
		return nil, err
	}
	if req.Name != nil {
		if err := s.ensureNameAvailable(ctx, strings.TrimSpace(*req.Name), customerID); err != nil {
			return nil, err
		}
	}
	applyPartyUpdate(req, &customer.Name, &customer.Contact, &customer.Phone, &customer.Email, &customer.Address)
	customer.Touch(s.ledger.now())

	if err := s.ledger.repos.CustomerRepo.UpdateCustomer(ctx, *customer); err != nil {
		s.LogError(ctx, err, "Failed to update customer", slog.String("customer_id", customerID))
		return nil, err
	}

	s.ledger.record(ctx, domain.ActivityCustomer, customer.CustomerID, "Updated customer %s", customer.Name)
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	customer, err := s.ledger.repos.CustomerRepo.DeleteCustomer(ctx, customerID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to delete customer", slog.String("customer_id", customerID))
		return nil, err
	}

	s.ledger.record(ctx, domain.ActivityCustomer, customer.CustomerID, "Deleted customer %s", customer.Name)
	return customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	s.ledger.mu.RLock()
	defer s.ledger.mu.RUnlock()

	customer, err := s.ledger.repos.CustomerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find customer", slog.String("customer_id", customerID))
		return nil, err
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	s.ledger.mu.RLock()
	defer s.ledger.mu.RUnlock()
	return s.ledger.repos.CustomerRepo.ListCustomers(ctx)
}

func (s *customerService) SearchCustomers(ctx context.Context, keyword string) ([]domain.Customer, error) {
	customers, err := s.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	matches := make([]domain.Customer, 0, len(customers))
	for _, c := range customers {
		if matchesKeyword(keyword, c.Name, c.Contact, c.Phone, c.Email) {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

func (s *customerService) GetCustomerSalesStats(ctx context.Context, customerID string) (*domain.CustomerSalesStats, error) {
	s.ledger.mu.RLock()
	defer s.ledger.mu.RUnlock()

	if _, err := s.ledger.repos.CustomerRepo.FindCustomerByID(ctx, customerID); err != nil {
		s.LogFailure(ctx, err, "Failed to find customer for sales stats", slog.String("customer_id", customerID))
		return nil, err
	}

	orders, err := s.ledger.repos.SalesOrderRepo.ListSalesOrders(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales orders")
		return nil, err
	}

	stats := &domain.CustomerSalesStats{CustomerID: customerID, TotalAmount: decimal.Zero}
	for _, order := range orders {
		if order.CustomerID == nil || *order.CustomerID != customerID {
			continue
		}
		stats.TotalOrders++
		stats.TotalAmount = stats.TotalAmount.Add(order.TotalAmount)
		if stats.LastOrderDate == nil || order.OrderDate.After(*stats.LastOrderDate) {
			orderDate := order.OrderDate
			stats.LastOrderDate = &orderDate
		}
	}
	return stats, nil
}

func (s *customerService) ensureNameAvailable(ctx context.Context, name string, selfID string) error {
	existing, err := s.ledger.repos.CustomerRepo.FindCustomerByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		s.LogError(ctx, err, "Failed to check customer name", slog.String("name", name))
		return err
	}
	if existing.CustomerID == selfID {
		return nil
	}
	return fmt.Errorf("%w: customer %s already exists as %s", apperrors.ErrDuplicate, name, existing.CustomerID)
}

type supplierService struct {
	BaseService
}

func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	name := strings.TrimSpace(req.Name)
	if err := s.ensureNameAvailable(ctx, name, ""); err != nil {
		return nil, err
	}

	supplier := domain.Supplier{
		SupplierID: s.ledger.ids.Next(idgen.Supplier),
		Name:       name,
		Contact:    req.Contact,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		Timestamps: domain.NewTimestamps(s.ledger.now()),
	}
	if err := s.ledger.repos.SupplierRepo.SaveSupplier(ctx, supplier); err != nil {
		s.LogError(ctx, err, "Failed to save supplier", slog.String("supplier_id", supplier.SupplierID))
		return nil, err
	}

	s.ledger.record(ctx, domain.ActivitySupplier, supplier.SupplierID, "Added supplier %s", supplier.Name)
	return &supplier, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest) (*domain.Supplier, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	supplier, err := s.ledger.repos.SupplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find supplier for update", slog.String("supplier_id", supplierID))
		return nil, err
	}
	if req.Name != nil {
		if err := s.ensureNameAvailable(ctx, strings.TrimSpace(*req.Name), supplierID); err != nil {
			return nil, err
		}
	}
	applyPartyUpdate(req, &supplier.Name, &supplier.Contact, &supplier.Phone, &supplier.Email, &supplier.Address)
	supplier.Touch(s.ledger.now())

	if err := s.ledger.repos.SupplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		s.LogError(ctx, err, "Failed to update supplier", slog.String("supplier_id", supplierID))
		return nil, err
	}

	s.ledger.record(ctx, domain.ActivitySupplier, supplier.SupplierID, "Updated supplier %s", supplier.Name)
	return supplier, nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	supplier, err := s.ledger.repos.SupplierRepo.DeleteSupplier(ctx, supplierID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to delete supplier", slog.String("supplier_id", supplierID))
		return nil, err
	}

	s.ledger.record(ctx, domain.ActivitySupplier, supplier.SupplierID, "Deleted supplier %s", supplier.Name)
	return supplier, nil
}

func (s *supplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	s.ledger.mu.RLock()
	defer s.ledger.mu.RUnlock()

	supplier, err := s.ledger.repos.SupplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find supplier", slog.String("supplier_id", supplierID))
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	s.ledger.mu.RLock()
	defer s.ledger.mu.RUnlock()
	return s.ledger.repos.SupplierRepo.ListSuppliers(ctx)
}

func (s *supplierService) SearchSuppliers(ctx context.Context, keyword string) ([]domain.Supplier, error) {
	suppliers, err := s.ListSuppliers(ctx)
	if err != nil {
		return nil, err
	}
	matches := make([]domain.Supplier, 0, len(suppliers))
	for _, sup := range suppliers {
		if matchesKeyword(keyword, sup.Name, sup.Contact, sup.Phone, sup.Email) {
			matches = append(matches, sup)
		}
	}
	return matches, nil
}

func (s *supplierService) ensureNameAvailable(ctx context.Context, name string, selfID string) error {
	existing, err := s.ledger.repos.SupplierRepo.FindSupplierByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		s.LogError(ctx, err, "Failed to check supplier name", slog.String("name", name))
		return err
	}
	if existing.SupplierID == selfID {
		return nil
	}
	return fmt.Errorf("%w: supplier %s already exists as %s", apperrors.ErrDuplicate, name, existing.SupplierID)
}
