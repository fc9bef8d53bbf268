package storage

import (
	"github.com/jacksmith/carworld/internal/model"
)

// PurchaseStore holds purchases in the order they were loaded or added.
// Purchases are never sorted.
type PurchaseStore struct {
	purchases []model.Purchase
}

// NewPurchaseStore returns a store holding the given purchases.
func NewPurchaseStore(purchases ...model.Purchase) *PurchaseStore {
	return &PurchaseStore{purchases: append([]model.Purchase(nil), purchases...)}
}

// Load replaces the store contents with the purchases in path.
// Malformed lines are skipped. The store is left untouched when the file
// cannot be read.
func (s *PurchaseStore) Load(path string) error {
	var loaded []model.Purchase
	err := readLines(path, func(lineNo int, line string) {
		p, err := model.ParsePurchase(line)
		if err != nil {
			log.Debugf("%s:%d: skipping malformed purchase: %v", path, lineNo, err)
			return
		}
		loaded = append(loaded, p)
	})
	if err != nil {
		return err
	}

	s.purchases = loaded
	log.Infof("loaded %d purchases from %s", len(loaded), path)
	return nil
}

// Save writes every purchase to path, one per line, replacing the file.
func (s *PurchaseStore) Save(path string) error {
	err := writeLines(path, len(s.purchases), func(i int) string {
		return model.FormatPurchase(s.purchases[i])
	})
	if err != nil {
		return err
	}
	log.Infof("saved %d purchases to %s", len(s.purchases), path)
	return nil
}

// Len returns the number of purchases.
func (s *PurchaseStore) Len() int {
	return len(s.purchases)
}

// At returns the purchase at index i.
func (s *PurchaseStore) At(i int) model.Purchase {
	return s.purchases[i]
}

// All returns a copy of the purchases in store order.
func (s *PurchaseStore) All() []model.Purchase {
	return append([]model.Purchase(nil), s.purchases...)
}

// Add appends p.
func (s *PurchaseStore) Add(p model.Purchase) {
	s.purchases = append(s.purchases, p)
}

// ListForAccount returns the purchases for the account in store order.
func (s *PurchaseStore) ListForAccount(account int) []model.Purchase {
	var result []model.Purchase
	for _, p := range s.purchases {
		if p.AccountNumber == account {
			result = append(result, p)
		}
	}
	return result
}

// TotalSpend sums the amounts of every purchase for the account.
func (s *PurchaseStore) TotalSpend(account int) float64 {
	total := 0.0
	for _, p := range s.purchases {
		if p.AccountNumber == account {
			total += p.Amount
		}
	}
	return total
}

// DeleteAllForAccount removes every purchase for the account and returns how
// many were removed.
func (s *PurchaseStore) DeleteAllForAccount(account int) int {
	kept := s.purchases[:0]
	for _, p := range s.purchases {
		if p.AccountNumber != account {
			kept = append(kept, p)
		}
	}
	removed := len(s.purchases) - len(kept)
	s.purchases = kept
	return removed
}
