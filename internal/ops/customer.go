// Package ops implements the customer and purchase workflows on top of the
// stores: interactive add and update, cascade delete, reporting, and
// integrity checks. Stores are always passed in; ops keeps no state.
package ops

import (
	"strconv"
	"strings"

	"github.com/jacksmith/carworld/internal/cli"
	"github.com/jacksmith/carworld/internal/model"
	"github.com/jacksmith/carworld/internal/storage"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("carworld")

// AddCustomerOptions controls interactive customer creation.
type AddCustomerOptions struct {
	// ManualAccount prompts for the account number instead of assigning
	// the next free one.
	ManualAccount bool
}

// AddCustomerInteractive prompts for a new customer and appends it.
func AddCustomerInteractive(p *cli.Prompter, s *storage.CustomerStore, opts AddCustomerOptions) (model.Customer, error) {
	var c model.Customer
	var err error

	if c.FirstName, err = p.Line("Enter first name: "); err != nil {
		return c, err
	}
	if c.LastName, err = p.Line("Enter last name: "); err != nil {
		return c, err
	}

	if opts.ManualAccount {
		if c.AccountNumber, err = PromptNewAccount(p, s); err != nil {
			return c, err
		}
	} else {
		c.AccountNumber = s.GenerateUniqueAccount()
		p.Printf("Assigned account number: %d\n", c.AccountNumber)
	}

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Street address: ", &c.Street},
		{"City: ", &c.City},
		{"State (2-letter): ", &c.State},
		{"ZIP: ", &c.Zip},
		{"Phone: ", &c.Phone},
	}
	for _, f := range fields {
		if *f.dst, err = p.Line(f.prompt); err != nil {
			return c, err
		}
	}

	if err := AddCustomer(s, c); err != nil {
		return c, err
	}
	p.Printf("%s (Acct %d).\n", cli.Green("Customer added"), c.AccountNumber)
	return c, nil
}

// AddCustomer appends c. Returns a *cli.DuplicateAccountError when the
// account number is already taken.
func AddCustomer(s *storage.CustomerStore, c model.Customer) error {
	if s.Exists(c.AccountNumber) {
		return &cli.DuplicateAccountError{Account: c.AccountNumber}
	}
	s.Add(c)
	log.Debugf("added customer %d", c.AccountNumber)
	return nil
}

// PromptNewAccount prompts until the answer is an account number no
// customer uses yet.
func PromptNewAccount(p *cli.Prompter, s *storage.CustomerStore) (int, error) {
	for {
		answer, err := p.Line("Enter account number (numeric, unique): ")
		if err != nil {
			return 0, err
		}
		acct, err := ParseAccount(answer)
		if err != nil {
			p.Println(cli.Red("Account must be digits only."))
			continue
		}
		if s.Exists(acct) {
			p.Println(cli.Red("That account already exists."))
			continue
		}
		return acct, nil
	}
}

// AddCustomers runs AddCustomerInteractive n times. n <= 0 does nothing.
func AddCustomers(p *cli.Prompter, s *storage.CustomerStore, n int, opts AddCustomerOptions) error {
	for remaining := n; remaining > 0; remaining-- {
		p.Printf("\nAdding customer (%d remaining):\n", remaining)
		if _, err := AddCustomerInteractive(p, s, opts); err != nil {
			return err
		}
	}
	return nil
}

// UpdateCustomerInteractive prompts for each editable field, showing the
// current value. A blank answer keeps the current value.
// Returns a *cli.NotFoundError when the account does not exist.
func UpdateCustomerInteractive(p *cli.Prompter, s *storage.CustomerStore, account int) error {
	c, ok := s.Get(account)
	if !ok {
		return &cli.NotFoundError{Type: "customer", Account: account}
	}

	p.Println("Updating customer (leave blank to keep current)")

	var changes model.CustomerChanges
	fields := []struct {
		label   string
		current string
		dst     **string
	}{
		{"First name", c.FirstName, &changes.FirstName},
		{"Last name", c.LastName, &changes.LastName},
		{"Street", c.Street, &changes.Street},
		{"City", c.City, &changes.City},
		{"State", c.State, &changes.State},
		{"ZIP", c.Zip, &changes.Zip},
		{"Phone", c.Phone, &changes.Phone},
	}
	for _, f := range fields {
		answer, err := p.Line(f.label + " [" + f.current + "]: ")
		if err != nil {
			return err
		}
		if answer != "" {
			value := answer
			*f.dst = &value
		}
	}

	return UpdateCustomer(s, account, changes)
}

// UpdateCustomer applies changes to the customer with the account number.
// Returns a *cli.NotFoundError when the account does not exist.
func UpdateCustomer(s *storage.CustomerStore, account int, changes model.CustomerChanges) error {
	if !s.Update(account, changes) {
		return &cli.NotFoundError{Type: "customer", Account: account}
	}
	log.Debugf("updated customer %d", account)
	return nil
}

// DeleteCustomer removes the customer and every purchase recorded against
// the account. It returns the number of purchases removed.
// Returns a *cli.NotFoundError when the account does not exist, in which
// case no purchases are touched.
func DeleteCustomer(customers *storage.CustomerStore, purchases *storage.PurchaseStore, account int) (int, error) {
	if !customers.Delete(account) {
		return 0, &cli.NotFoundError{Type: "customer", Account: account}
	}
	removed := purchases.DeleteAllForAccount(account)
	log.Infof("deleted customer %d and %d purchase(s)", account, removed)
	return removed, nil
}

// ParseAccount converts raw input into an account number.
func ParseAccount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if !cli.IsDigits(s) {
		return 0, &cli.ValidationError{Field: "account", Message: "must be digits only"}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &cli.ValidationError{Field: "account", Message: "too large"}
	}
	return n, nil
}
