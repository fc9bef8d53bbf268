package ops

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/jacksmith/carworld/internal/cli"
	"github.com/jacksmith/carworld/internal/storage"
)

// WriteReport writes the export report: every customer, every purchase,
// then each customer's total spend.
func WriteReport(w io.Writer, customers *storage.CustomerStore, purchases *storage.PurchaseStore) error {
	bw := bufio.NewWriter(w)

	for i, c := range customers.All() {
		fmt.Fprintf(bw, "Customer #%d\n", i+1)
		fmt.Fprintf(bw, "Name: %s\n", c.FullName())
		fmt.Fprintf(bw, "Account: %d\n", c.AccountNumber)
		fmt.Fprintf(bw, "Address: %s\n", c.Address())
		fmt.Fprintf(bw, "Phone: %s\n\n", c.Phone)
	}

	for i, p := range purchases.All() {
		fmt.Fprintf(bw, "Purchase #%d\n", i+1)
		fmt.Fprintf(bw, "Account: %d\n", p.AccountNumber)
		fmt.Fprintf(bw, "Model: %s\n", p.Item)
		fmt.Fprintf(bw, "Brand: %s\n", p.Brand)
		fmt.Fprintf(bw, "Color: %s\n", p.Color)
		fmt.Fprintf(bw, "Date: %s\n", p.Date)
		fmt.Fprintf(bw, "Price: %s\n\n", cli.FormatMoney(p.Amount))
	}

	fmt.Fprint(bw, "Total Spent By Customers\n\n")
	for _, c := range customers.All() {
		fmt.Fprintf(bw, "%s (Acct %d): %s\n",
			c.FullName(), c.AccountNumber, cli.FormatMoney(purchases.TotalSpend(c.AccountNumber)))
	}

	return bw.Flush()
}

// ExportReport writes the report to path, replacing any existing file.
func ExportReport(path string, customers *storage.CustomerStore, purchases *storage.PurchaseStore) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open %s for writing: %w", path, err)
	}
	defer f.Close()

	if err := WriteReport(f, customers, purchases); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	log.Infof("exported %d customers and %d purchases to %s", customers.Len(), purchases.Len(), path)
	return nil
}
