package domain

// Customer is a buyer referenced by sales orders.
type Customer struct {
	CustomerID string `json:"customerID"`
	Name       string `json:"name"`
	Contact    string `json:"contact"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	Timestamps
}

// Supplier is a vendor referenced by purchase orders.
type Supplier struct {
	SupplierID string `json:"supplierID"`
	Name       string `json:"name"`
	Contact    string `json:"contact"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	Timestamps
}
