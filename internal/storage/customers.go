package storage

import (
	"sort"

	"github.com/jacksmith/carworld/internal/model"
)

// minAccount is one less than the first account number ever assigned.
const minAccount = 999

// CustomerStore holds customers in insertion order, or in the order of the
// last sort.
type CustomerStore struct {
	customers []model.Customer
}

// NewCustomerStore returns a store holding the given customers.
func NewCustomerStore(customers ...model.Customer) *CustomerStore {
	return &CustomerStore{customers: append([]model.Customer(nil), customers...)}
}

// Load replaces the store contents with the customers in path.
// Malformed lines are skipped. The store is left untouched when the file
// cannot be read.
func (s *CustomerStore) Load(path string) error {
	var loaded []model.Customer
	err := readLines(path, func(lineNo int, line string) {
		c, err := model.ParseCustomer(line)
		if err != nil {
			log.Debugf("%s:%d: skipping malformed customer: %v", path, lineNo, err)
			return
		}
		loaded = append(loaded, c)
	})
	if err != nil {
		return err
	}

	s.customers = loaded
	log.Infof("loaded %d customers from %s", len(loaded), path)
	return nil
}

// Save writes every customer to path, one per line, replacing the file.
func (s *CustomerStore) Save(path string) error {
	err := writeLines(path, len(s.customers), func(i int) string {
		return model.FormatCustomer(s.customers[i])
	})
	if err != nil {
		return err
	}
	log.Infof("saved %d customers to %s", len(s.customers), path)
	return nil
}

// Len returns the number of customers.
func (s *CustomerStore) Len() int {
	return len(s.customers)
}

// At returns the customer at index i.
func (s *CustomerStore) At(i int) model.Customer {
	return s.customers[i]
}

// All returns a copy of the customers in store order.
func (s *CustomerStore) All() []model.Customer {
	return append([]model.Customer(nil), s.customers...)
}

// FindIndex returns the index of the first customer with the account number.
func (s *CustomerStore) FindIndex(account int) (int, bool) {
	for i := range s.customers {
		if s.customers[i].AccountNumber == account {
			return i, true
		}
	}
	return -1, false
}

// Exists reports whether any customer has the account number.
func (s *CustomerStore) Exists(account int) bool {
	_, ok := s.FindIndex(account)
	return ok
}

// Get returns the customer with the account number.
func (s *CustomerStore) Get(account int) (model.Customer, bool) {
	i, ok := s.FindIndex(account)
	if !ok {
		return model.Customer{}, false
	}
	return s.customers[i], true
}

// SortAscending orders customers by last name, then first name, A to Z.
func (s *CustomerStore) SortAscending() {
	sort.SliceStable(s.customers, func(i, j int) bool {
		a, b := s.customers[i], s.customers[j]
		if a.LastName != b.LastName {
			return a.LastName < b.LastName
		}
		return a.FirstName < b.FirstName
	})
}

// SortDescending orders customers by last name, then first name, Z to A.
func (s *CustomerStore) SortDescending() {
	sort.SliceStable(s.customers, func(i, j int) bool {
		a, b := s.customers[i], s.customers[j]
		if a.LastName != b.LastName {
			return a.LastName > b.LastName
		}
		return a.FirstName > b.FirstName
	})
}

// Add appends c. The caller is responsible for giving it a unique account
// number.
func (s *CustomerStore) Add(c model.Customer) {
	s.customers = append(s.customers, c)
}

// GenerateUniqueAccount returns one more than the highest account number in
// use, or 1000 for an empty store. Nothing is reserved: add the customer
// before generating another.
func (s *CustomerStore) GenerateUniqueAccount() int {
	highest := minAccount
	for _, c := range s.customers {
		if c.AccountNumber > highest {
			highest = c.AccountNumber
		}
	}
	return highest + 1
}

// Update applies changes to the customer with the account number.
// Returns false if no such customer exists.
func (s *CustomerStore) Update(account int, changes model.CustomerChanges) bool {
	i, ok := s.FindIndex(account)
	if !ok {
		return false
	}
	changes.Apply(&s.customers[i])
	return true
}

// Delete removes the first customer with the account number.
// Returns false if no such customer exists.
func (s *CustomerStore) Delete(account int) bool {
	i, ok := s.FindIndex(account)
	if !ok {
		return false
	}
	s.customers = append(s.customers[:i], s.customers[i+1:]...)
	return true
}
