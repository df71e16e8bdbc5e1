package dto

// CreatePartyRequest defines the data needed to create a customer or supplier.
type CreatePartyRequest struct {
	Name    string `json:"name" validate:"required,notblank,max=200"`
	Contact string `json:"contact" validate:"max=200"`
	Phone   string `json:"phone" validate:"max=50"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"max=500"`
}

// UpdatePartyRequest defines the fields of a customer or supplier that may be changed.
type UpdatePartyRequest struct {
	Name    *string `json:"name" validate:"omitempty,notblank,max=200"`
	Contact *string `json:"contact" validate:"omitempty,max=200"`
	Phone   *string `json:"phone" validate:"omitempty,max=50"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address" validate:"omitempty,max=500"`
}

// CreateCustomerRequest defines the data needed to create a customer.
type CreateCustomerRequest = CreatePartyRequest

// UpdateCustomerRequest defines the data allowed for updating a customer.
type UpdateCustomerRequest = UpdatePartyRequest

// CreateSupplierRequest defines the data needed to create a supplier.
type CreateSupplierRequest = CreatePartyRequest

// UpdateSupplierRequest defines the data allowed for updating a supplier.
type UpdateSupplierRequest = UpdatePartyRequest

// SearchParams is the keyword query used by list endpoints.
type SearchParams struct {
	Query string `form:"q"`
}
