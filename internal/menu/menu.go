// Package menu runs the interactive numbered-menu session over the customer
// and purchase stores.
package menu

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/jacksmith/carworld/internal/cli"
	"github.com/jacksmith/carworld/internal/config"
	"github.com/jacksmith/carworld/internal/model"
	"github.com/jacksmith/carworld/internal/ops"
	"github.com/jacksmith/carworld/internal/storage"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("carworld")

const banner = "   Welcome to Car World Inventory  \n" +
	"  Manage customers and purchases easily  \n" +
	"=========================================\n\n"

const mainMenu = "========== MAIN MENU ==========\n" +
	"1) Print all customers\n" +
	"2) Sort customers A -> Z\n" +
	"3) Sort customers Z -> A\n" +
	"4) View customer + purchases\n" +
	"5) View customer total spend\n" +
	"6) Add a new customer\n" +
	"7) Add multiple customers\n" +
	"8) Update a customer\n" +
	"9) Delete a customer\n" +
	"10) Add a purchase\n" +
	"11) Add multiple purchases\n" +
	"12) Save data (overwrite)\n" +
	"13) Export data\n" +
	"14) Exit\n" +
	"Choose an option: "

// errExit ends the session after option 14.
var errExit = errors.New("exit")

// Controller owns one session. The stores are passed in by the caller and
// are only touched from Run.
type Controller struct {
	cfg       *config.Config
	p         *cli.Prompter
	customers *storage.CustomerStore
	purchases *storage.PurchaseStore
	actions   map[string]func() error
}

// New returns a Controller reading choices through p.
func New(cfg *config.Config, p *cli.Prompter, customers *storage.CustomerStore, purchases *storage.PurchaseStore) *Controller {
	c := &Controller{
		cfg:       cfg,
		p:         p,
		customers: customers,
		purchases: purchases,
	}
	c.actions = map[string]func() error{
		"1":  c.printAll,
		"2":  c.sortAscending,
		"3":  c.sortDescending,
		"4":  c.viewCustomer,
		"5":  c.viewTotalSpend,
		"6":  c.addCustomer,
		"7":  c.addCustomers,
		"8":  c.updateCustomer,
		"9":  c.deleteCustomer,
		"10": c.addPurchase,
		"11": c.addPurchases,
		"12": c.save,
		"13": c.export,
		"14": c.exit,
	}
	return c
}

// Run prints the banner, loads both stores and loops until the user exits.
// Running out of input ends the session without saving. Only prompt I/O
// failures other than io.EOF are returned.
func (c *Controller) Run() error {
	c.p.Printf("%s", banner)
	c.load()

	for {
		choice, err := c.p.Line(mainMenu)
		if err != nil {
			return c.stop(err)
		}
		if choice == "" {
			continue
		}

		action, ok := c.actions[choice]
		if !ok {
			c.p.Println(cli.Red("Invalid selection."))
			continue
		}
		log.Debugf("menu choice %s", choice)

		if err := action(); err != nil {
			return c.stop(err)
		}
	}
}

func (c *Controller) stop(err error) error {
	switch {
	case errors.Is(err, errExit):
		return nil
	case errors.Is(err, io.EOF):
		log.Info("input closed, ending session without saving")
		c.p.Println()
		c.p.Println("Goodbye!")
		return nil
	default:
		return err
	}
}

func (c *Controller) load() {
	if err := c.customers.Load(c.cfg.CustomersFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.p.Println("No customer file found. Starting with empty database.")
		} else {
			log.Warningf("could not load customers: %v", err)
			c.p.Println(cli.Red("Could not read " + c.cfg.CustomersFile + ". Starting with empty database."))
		}
	} else {
		c.p.Println("Customer data found.")
	}

	if err := c.purchases.Load(c.cfg.PurchasesFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.p.Println("No purchases file found. Starting with no data.")
		} else {
			log.Warningf("could not load purchases: %v", err)
			c.p.Println(cli.Red("Could not read " + c.cfg.PurchasesFile + ". Starting with no data."))
		}
	} else {
		c.p.Println("Purchase data found.")
	}
}

// selectCustomer prints the customer table and asks for a row number.
// ok is false when the user cancelled or picked a row that does not exist.
func (c *Controller) selectCustomer(msg string) (model.Customer, bool, error) {
	cli.RenderCustomers(c.p.Out(), c.customers.All())

	idx, given, err := c.p.OptionalNumber(msg)
	if err != nil {
		return model.Customer{}, false, err
	}
	if !given || idx == 0 {
		return model.Customer{}, false, nil
	}
	if idx > c.customers.Len() {
		c.p.Println(cli.Red("Invalid selection."))
		return model.Customer{}, false, nil
	}
	return c.customers.At(idx - 1), true, nil
}

func (c *Controller) printAll() error {
	cli.RenderCustomers(c.p.Out(), c.customers.All())
	return c.p.Pause()
}

func (c *Controller) sortAscending() error {
	c.customers.SortAscending()
	c.p.Println("Sorted ascending.")
	return c.p.Pause()
}

func (c *Controller) sortDescending() error {
	c.customers.SortDescending()
	c.p.Println("Sorted descending.")
	return c.p.Pause()
}

func (c *Controller) viewCustomer() error {
	cust, ok, err := c.selectCustomer("Select customer by number (or 0 to cancel): ")
	if err != nil || !ok {
		return err
	}

	c.p.Println("Customer Info")
	cli.RenderCustomer(c.p.Out(), cust)
	c.p.Println("Purchases")
	cli.RenderPurchases(c.p.Out(), cust.AccountNumber, c.purchases.ListForAccount(cust.AccountNumber))
	return c.p.Pause()
}

func (c *Controller) viewTotalSpend() error {
	cust, ok, err := c.selectCustomer("Select customer by number to view total spend (or 0 to cancel): ")
	if err != nil || !ok {
		return err
	}

	total := c.purchases.TotalSpend(cust.AccountNumber)
	c.p.Printf("Total spend for account %d: %s\n", cust.AccountNumber, cli.FormatMoney(total))
	return c.p.Pause()
}

func (c *Controller) addOptions() ops.AddCustomerOptions {
	return ops.AddCustomerOptions{ManualAccount: !c.cfg.AutoAccount}
}

func (c *Controller) addCustomer() error {
	if _, err := ops.AddCustomerInteractive(c.p, c.customers, c.addOptions()); err != nil {
		return err
	}
	return c.p.Pause()
}

func (c *Controller) addCustomers() error {
	n, _, err := c.p.OptionalNumber("How many customers to add (or 0 to cancel): ")
	if err != nil {
		return err
	}
	if err := ops.AddCustomers(c.p, c.customers, n, c.addOptions()); err != nil {
		return err
	}
	return c.p.Pause()
}

func (c *Controller) updateCustomer() error {
	cust, ok, err := c.selectCustomer("Select customer number to update (or 0 to cancel): ")
	if err != nil || !ok {
		return err
	}

	err = ops.UpdateCustomerInteractive(c.p, c.customers, cust.AccountNumber)
	var notFound *cli.NotFoundError
	switch {
	case errors.As(err, &notFound):
		cli.RenderCustomerNotFound(c.p.Out(), cust.AccountNumber)
		c.p.Println(cli.Red("Failed to update."))
	case err != nil:
		return err
	default:
		c.p.Println(cli.Green("Updated."))
	}
	return c.p.Pause()
}

func (c *Controller) deleteCustomer() error {
	cust, ok, err := c.selectCustomer("Select customer number to delete (or 0 to cancel): ")
	if err != nil || !ok {
		return err
	}

	yes, err := c.p.Confirm(fmt.Sprintf("Are you sure you want to delete account %d? (y/n): ", cust.AccountNumber))
	if err != nil {
		return err
	}
	if !yes {
		c.p.Println("Delete canceled.")
		return c.p.Pause()
	}

	if _, err := ops.DeleteCustomer(c.customers, c.purchases, cust.AccountNumber); err != nil {
		log.Warningf("delete failed: %v", err)
		c.p.Println(cli.Red("Delete failed."))
	} else {
		c.p.Println(cli.Green("Deleted customer and their purchases."))
	}
	return c.p.Pause()
}

func (c *Controller) addPurchase() error {
	if _, err := ops.AddPurchaseInteractive(c.p, c.purchases); err != nil {
		return err
	}
	return c.p.Pause()
}

func (c *Controller) addPurchases() error {
	n, _, err := c.p.OptionalNumber("How many purchases to add (or 0 to cancel): ")
	if err != nil {
		return err
	}
	if err := ops.AddPurchases(c.p, c.purchases, n); err != nil {
		return err
	}
	return c.p.Pause()
}

// saveAll writes both stores. Purchases are not written when the customer
// save fails.
func (c *Controller) saveAll() error {
	if err := c.customers.Save(c.cfg.CustomersFile); err != nil {
		return err
	}
	return c.purchases.Save(c.cfg.PurchasesFile)
}

func (c *Controller) save() error {
	if err := c.saveAll(); err != nil {
		log.Errorf("save failed: %v", err)
		c.p.Println(cli.Red("Failed to save data."))
	} else {
		c.p.Println(cli.Green("Saved to default files."))
	}
	return c.p.Pause()
}

func (c *Controller) export() error {
	path := c.cfg.ExportFile
	if err := ops.ExportReport(path, c.customers, c.purchases); err != nil {
		log.Errorf("export failed: %v", err)
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) && pathErr.Op == "open" {
			c.p.Println(cli.Red(fmt.Sprintf("ERROR: Could not open %s for writing.", path)))
		} else {
			c.p.Println(cli.Red(cli.FormatError(err)))
		}
	} else {
		c.p.Printf("Data successfully exported to %s\n", path)
	}
	return c.p.Pause()
}

func (c *Controller) exit() error {
	yes, err := c.p.Confirm("Exiting. Would you like to save changes? (y/n): ")
	if err != nil {
		return err
	}
	if yes {
		if err := c.saveAll(); err != nil {
			log.Errorf("save failed: %v", err)
			c.p.Println(cli.Red("Failed to save data."))
		} else {
			c.p.Println("Saved.")
		}
	}
	c.p.Println("Goodbye!")
	return errExit
}
