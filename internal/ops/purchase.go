package ops

import (
	"github.com/jacksmith/carworld/internal/cli"
	"github.com/jacksmith/carworld/internal/model"
	"github.com/jacksmith/carworld/internal/storage"
)

// AddPurchaseInteractive prompts for a purchase and appends it. The account
// number is not checked against the customer store.
func AddPurchaseInteractive(p *cli.Prompter, s *storage.PurchaseStore) (model.Purchase, error) {
	var pur model.Purchase
	var err error

	if pur.AccountNumber, err = p.Number("Enter account number for purchase: ", "Account number required."); err != nil {
		return pur, err
	}
	if pur.Item, err = p.Line("Car model (item): "); err != nil {
		return pur, err
	}
	if pur.Brand, err = p.Line("Brand: "); err != nil {
		return pur, err
	}
	if pur.Color, err = p.Line("Color: "); err != nil {
		return pur, err
	}
	if pur.Date, err = p.Line("Date (YYYY-MM-DD): "); err != nil {
		return pur, err
	}
	if pur.Amount, err = p.Amount("Price amount: "); err != nil {
		return pur, err
	}

	s.Add(pur)
	log.Debugf("added purchase for account %d", pur.AccountNumber)
	p.Println(cli.Green("Purchase added."))
	return pur, nil
}

// AddPurchases runs AddPurchaseInteractive n times. n <= 0 does nothing.
func AddPurchases(p *cli.Prompter, s *storage.PurchaseStore, n int) error {
	for remaining := n; remaining > 0; remaining-- {
		p.Printf("Adding purchase (%d remaining):\n", remaining)
		if _, err := AddPurchaseInteractive(p, s); err != nil {
			return err
		}
	}
	return nil
}
