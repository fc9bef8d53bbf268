package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jacksmith/carworld/internal/model"
)

// Rule widths match the fixed column layouts below.
const (
	customerRuleWidth = 79
	purchaseRuleWidth = 72
)

// RenderCustomers writes a numbered, fixed-width customer table.
func RenderCustomers(w io.Writer, customers []model.Customer) {
	if len(customers) == 0 {
		fmt.Fprintln(w, "No customers to display.")
		return
	}

	table := NewTable()
	table.SetSeparator("")
	widths := []int{4, 15, 15, 10, 25, 8, 12}
	for i, width := range widths {
		table.SetWidth(i, width)
	}
	// Free-text columns are cut short of their width so a gap always remains.
	for _, col := range []int{1, 2, 4} {
		table.SetMaxWidth(col, widths[col]-1)
	}
	table.AddRow("#", "Last Name", "First Name", "Account", "City", "State", "Phone")
	table.AddRow(strings.Repeat("-", customerRuleWidth))
	for i, c := range customers {
		table.AddRow(
			strconv.Itoa(i+1),
			c.LastName,
			c.FirstName,
			strconv.Itoa(c.AccountNumber),
			c.City,
			c.State,
			c.Phone,
		)
	}
	table.Render(w)
}

// RenderCustomer writes the detail block for one customer.
func RenderCustomer(w io.Writer, c model.Customer) {
	fmt.Fprintf(w, "Account #: %d\n", c.AccountNumber)
	fmt.Fprintf(w, "Name      : %s\n", c.FullName())
	fmt.Fprintf(w, "Address   : %s\n", c.Address())
	fmt.Fprintf(w, "Phone     : %s\n", c.Phone)
}

// RenderCustomerNotFound writes the lookup-miss message for account.
func RenderCustomerNotFound(w io.Writer, account int) {
	fmt.Fprintf(w, "Customer not found (acct %d).\n", account)
}

// RenderPurchases writes a fixed-width table of an account's purchases
// followed by a total row.
func RenderPurchases(w io.Writer, account int, purchases []model.Purchase) {
	if len(purchases) == 0 {
		fmt.Fprintf(w, "No purchases found for account %d\n", account)
		return
	}

	table := NewTable()
	table.SetSeparator("")
	widths := []int{5, 18, 15, 12, 12, 10}
	for i, width := range widths {
		table.SetWidth(i, width)
	}
	for _, col := range []int{1, 2, 3} {
		table.SetMaxWidth(col, widths[col]-1)
	}
	table.SetRightAlign(5)
	table.AddRow("#", "Model", "Brand", "Color", "Date", "Amount")
	table.AddRow(strings.Repeat("-", purchaseRuleWidth))

	total := 0.0
	for i, p := range purchases {
		table.AddRow(
			strconv.Itoa(i+1),
			p.Item,
			p.Brand,
			p.Color,
			p.Date,
			FormatAmount(p.Amount),
		)
		total += p.Amount
	}

	table.Render(w)
	fmt.Fprintln(w, strings.Repeat("-", purchaseRuleWidth))
	fmt.Fprintf(w, "%62s%12s\n", "Total:", FormatAmount(total))
}

// FormatAmount renders a currency value with two decimal places.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatMoney renders a currency value as "$1234.50".
func FormatMoney(v float64) string {
	return "$" + FormatAmount(v)
}
