package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jacksmith/carworld/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCustomers(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		RenderCustomers(&buf, nil)
		assert.Equal(t, "No customers to display.\n", buf.String())
	})

	t.Run("fixed-width rows", func(t *testing.T) {
		var buf bytes.Buffer
		RenderCustomers(&buf, []model.Customer{
			{FirstName: "John", LastName: "Doe", AccountNumber: 1000, City: "Reno", State: "NV", Phone: "555-0100"},
		})

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 3)
		assert.True(t, strings.HasPrefix(lines[0], "#   Last Name      First Name     Account   City"))
		assert.Equal(t, strings.Repeat("-", 79), lines[1])
		assert.Equal(t, "1   Doe            John           1000      Reno                     NV      555-0100", lines[2])
	})

	t.Run("long names are cut to keep columns aligned", func(t *testing.T) {
		var buf bytes.Buffer
		RenderCustomers(&buf, []model.Customer{
			{FirstName: "Maximilian", LastName: "Wolfeschlegelsteinhausen", AccountNumber: 1000, City: "North Las Vegas Township", State: "NV", Phone: "555-0100"},
		})

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "1   Wolfeschleg... Maximilian     1000      North Las Vegas Township NV      555-0100", lines[2])
	})
}

func TestRenderCustomer(t *testing.T) {
	var buf bytes.Buffer
	RenderCustomer(&buf, model.Customer{
		FirstName: "Ann", LastName: "Lee", AccountNumber: 1001,
		Street: "2 Oak Ave", City: "Elko", State: "NV", Zip: "89801", Phone: "555-0101",
	})

	expected := "Account #: 1001\n" +
		"Name      : Ann Lee\n" +
		"Address   : 2 Oak Ave, Elko, NV 89801\n" +
		"Phone     : 555-0101\n"
	assert.Equal(t, expected, buf.String())

	buf.Reset()
	RenderCustomerNotFound(&buf, 4242)
	assert.Equal(t, "Customer not found (acct 4242).\n", buf.String())
}

func TestRenderPurchases(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		var buf bytes.Buffer
		RenderPurchases(&buf, 1000, nil)
		assert.Equal(t, "No purchases found for account 1000\n", buf.String())
	})

	t.Run("rows and total", func(t *testing.T) {
		var buf bytes.Buffer
		RenderPurchases(&buf, 1000, []model.Purchase{
			{AccountNumber: 1000, Item: "Civic", Brand: "Honda", Color: "Blue", Date: "2023-01-01", Amount: 20000},
			{AccountNumber: 1000, Item: "CR-V", Brand: "Honda", Color: "Red", Date: "2023-02-01", Amount: 28000},
		})

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 6)
		assert.Equal(t, "#    Model             Brand          Color       Date            Amount", lines[0])
		assert.Equal(t, strings.Repeat("-", 72), lines[1])
		assert.Equal(t, "1    Civic             Honda          Blue        2023-01-01    20000.00", lines[2])
		assert.Equal(t, strings.Repeat("-", 72), lines[4])
		assert.True(t, strings.HasSuffix(lines[5], "Total:    48000.00"))
	})
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$48000.00", FormatMoney(48000))
	assert.Equal(t, "$0.00", FormatMoney(0))
	assert.Equal(t, "19999.99", FormatAmount(19999.99))
}
