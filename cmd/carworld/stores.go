package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/jacksmith/carworld/internal/storage"
)

// openStores loads both data files. A missing file yields an empty store,
// the same as the interactive menu.
func openStores() (*storage.CustomerStore, *storage.PurchaseStore, error) {
	customers := storage.NewCustomerStore()
	if err := customers.Load(cfg.CustomersFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, nil, err
	}

	purchases := storage.NewPurchaseStore()
	if err := purchases.Load(cfg.PurchasesFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, nil, err
	}

	return customers, purchases, nil
}

func saveStores(customers *storage.CustomerStore, purchases *storage.PurchaseStore) error {
	if err := customers.Save(cfg.CustomersFile); err != nil {
		return fmt.Errorf("failed to save data: %w", err)
	}
	if err := purchases.Save(cfg.PurchasesFile); err != nil {
		return fmt.Errorf("failed to save data: %w", err)
	}
	return nil
}
