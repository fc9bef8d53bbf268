// Package model defines the core data structures for carworld.
package model

// Customer represents a buyer on file.
type Customer struct {
	FirstName     string `yaml:"first_name"`
	LastName      string `yaml:"last_name"`
	AccountNumber int    `yaml:"account"`
	Street        string `yaml:"street"`
	City          string `yaml:"city"`
	State         string `yaml:"state"`
	Zip           string `yaml:"zip"`
	Phone         string `yaml:"phone"`
}

// Purchase represents a single vehicle sale.
// AccountNumber refers to a Customer by convention only; nothing enforces
// that the customer exists.
type Purchase struct {
	AccountNumber int     `yaml:"account"`
	Item          string  `yaml:"item"`
	Brand         string  `yaml:"brand"`
	Color         string  `yaml:"color"`
	Date          string  `yaml:"date"`
	Amount        float64 `yaml:"amount"`
}

// CustomerChanges represents fields that can be updated on a customer.
// A nil field keeps the current value. A non-nil field replaces it, even
// when it points at an empty string.
type CustomerChanges struct {
	FirstName *string
	LastName  *string
	Street    *string
	City      *string
	State     *string
	Zip       *string
	Phone     *string
}

// IsEmpty reports whether no field would change.
func (c CustomerChanges) IsEmpty() bool {
	return c.FirstName == nil && c.LastName == nil && c.Street == nil &&
		c.City == nil && c.State == nil && c.Zip == nil && c.Phone == nil
}

// Apply writes every non-nil field of c onto cust.
func (c CustomerChanges) Apply(cust *Customer) {
	if c.FirstName != nil {
		cust.FirstName = *c.FirstName
	}
	if c.LastName != nil {
		cust.LastName = *c.LastName
	}
	if c.Street != nil {
		cust.Street = *c.Street
	}
	if c.City != nil {
		cust.City = *c.City
	}
	if c.State != nil {
		cust.State = *c.State
	}
	if c.Zip != nil {
		cust.Zip = *c.Zip
	}
	if c.Phone != nil {
		cust.Phone = *c.Phone
	}
}

// FullName returns "First Last".
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Address returns the single-line postal address, e.g. "1 Main St, Reno, NV 89501".
func (c Customer) Address() string {
	return c.Street + ", " + c.City + ", " + c.State + " " + c.Zip
}
