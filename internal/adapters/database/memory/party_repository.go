package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/inventory_management_app/internal/apperrors"
	"github.com/SscSPs/inventory_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/inventory_management_app/internal/core/ports/repositories"
)

// CustomerRepository keeps customers keyed by id.
type CustomerRepository struct {
	customers *table[domain.Customer]
}

// NewCustomerRepository creates an empty customer repository.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{customers: newTable[domain.Customer]()}
}

var _ portsrepo.CustomerRepositoryFacade = (*CustomerRepository)(nil)

func (r *CustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	if !r.customers.insert(customer.CustomerID, customer) {
		return fmt.Errorf("%w: customer with ID %s already exists", apperrors.ErrDuplicate, customer.CustomerID)
	}
	return nil
}

func (r *CustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	if !r.customers.replace(customer.CustomerID, customer) {
		return fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customer.CustomerID)
	}
	return nil
}

func (r *CustomerRepository) DeleteCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, ok := r.customers.remove(customerID)
	if !ok {
		return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
	}
	return &customer, nil
}

func (r *CustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, ok := r.customers.get(customerID)
	if !ok {
		return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
	}
	return &customer, nil
}

func (r *CustomerRepository) FindCustomerByName(ctx context.Context, name string) (*domain.Customer, error) {
	customer, ok := r.customers.find(func(c domain.Customer) bool { return sameKey(c.Name, name) })
	if !ok {
		return nil, fmt.Errorf("%w: customer named %s", apperrors.ErrNotFound, name)
	}
	return &customer, nil
}

func (r *CustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return r.customers.all(), nil
}

// SupplierRepository keeps suppliers keyed by id.
type SupplierRepository struct {
	suppliers *table[domain.Supplier]
}

// NewSupplierRepository creates an empty supplier repository.
func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{suppliers: newTable[domain.Supplier]()}
}

var _ portsrepo.SupplierRepositoryFacade = (*SupplierRepository)(nil)

func (r *SupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	if !r.suppliers.insert(supplier.SupplierID, supplier) {
		return fmt.Errorf("%w: supplier with ID %s already exists", apperrors.ErrDuplicate, supplier.SupplierID)
	}
	return nil
}

func (r *SupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	if !r.suppliers.replace(supplier.SupplierID, supplier) {
		return fmt.Errorf("%w: supplier %s", apperrors.ErrNotFound, supplier.SupplierID)
	}
	return nil
}

func (r *SupplierRepository) DeleteSupplier(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	supplier, ok := r.suppliers.remove(supplierID)
	if !ok {
		return nil, fmt.Errorf("%w: supplier %s", apperrors.ErrNotFound, supplierID)
	}
	return &supplier, nil
}

func (r *SupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	supplier, ok := r.suppliers.get(supplierID)
	if !ok {
		return nil, fmt.Errorf("%w: supplier %s", apperrors.ErrNotFound, supplierID)
	}
	return &supplier, nil
}

func (r *SupplierRepository) FindSupplierByName(ctx context.Context, name string) (*domain.Supplier, error) {
	supplier, ok := r.suppliers.find(func(s domain.Supplier) bool { return sameKey(s.Name, name) })
	if !ok {
		return nil, fmt.Errorf("%w: supplier named %s", apperrors.ErrNotFound, name)
	}
	return &supplier, nil
}

func (r *SupplierRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	return r.suppliers.all(), nil
}
