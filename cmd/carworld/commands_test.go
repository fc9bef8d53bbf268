package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jacksmith/carworld/internal/cli"
	"github.com/jacksmith/carworld/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testCustomers = "John,Doe,1000,1 Main St,Reno,NV,89501,555-0100\n" +
		"Ann,Lee,1001,2 Oak Ave,Elko,NV,89801,555-0101\n" +
		"Bob,Adams,1002,3 Pine Rd,Ely,NV,89301,555-0102\n"

	testPurchases = "1000,Civic,Honda,Blue,2023-01-01,20000\n" +
		"1001,Model 3,Tesla,White,2023-01-15,41990.5\n" +
		"1000,CR-V,Honda,Red,2023-02-01,28000\n"
)

// setupTestData writes the sample data files to a temp directory and points
// the command config at them.
func setupTestData(t *testing.T, customers, purchases string) *config.Config {
	t.Helper()
	cli.SetColorEnabled(false)

	dir := t.TempDir()
	c := &config.Config{
		CustomersFile: filepath.Join(dir, "customers.txt"),
		PurchasesFile: filepath.Join(dir, "purchases.txt"),
		ExportFile:    filepath.Join(dir, "output.txt"),
		LogLevel:      config.DefaultLogLevel,
		Color:         "never",
		AutoAccount:   true,
	}
	require.NoError(t, os.WriteFile(c.CustomersFile, []byte(customers), 0644))
	require.NoError(t, os.WriteFile(c.PurchasesFile, []byte(purchases), 0644))

	cfg = c
	t.Cleanup(func() { cfg = nil })
	return c
}

// captureOutput runs fn with os.Stdout redirected and returns what it printed.
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := fn()

	w.Close()
	var buf bytes.Buffer
	buf.ReadFrom(r)
	os.Stdout = old

	return buf.String(), runErr
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// resetFlags restores every flag of cmd to its default and clears Changed.
func resetFlags(t *testing.T, flags *pflag.FlagSet) {
	t.Helper()
	flags.VisitAll(func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	})
}

func TestListCommand(t *testing.T) {
	setupTestData(t, testCustomers, testPurchases)

	tests := []struct {
		name  string
		flags func()
		order []string
	}{
		{
			name:  "file order by default",
			flags: func() {},
			order: []string{"Doe", "Lee", "Adams"},
		},
		{
			name:  "ascending",
			flags: func() { listAsc = true },
			order: []string{"Adams", "Doe", "Lee"},
		},
		{
			name:  "descending",
			flags: func() { listDesc = true },
			order: []string{"Lee", "Doe", "Adams"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listAsc = false
			listDesc = false
			tt.flags()

			output, err := captureOutput(t, func() error { return runList(nil, nil) })
			require.NoError(t, err)

			last := -1
			for _, name := range tt.order {
				idx := strings.Index(output, name)
				require.GreaterOrEqual(t, idx, 0, "expected %q in output", name)
				assert.Greater(t, idx, last, "expected %q after the previous name", name)
				last = idx
			}
		})
	}

	listAsc = false
	listDesc = false
	assert.Equal(t, testCustomers, readFile(t, cfg.CustomersFile), "list must not rewrite the file")
}

func TestListCommandEmpty(t *testing.T) {
	c := setupTestData(t, "", "")
	require.NoError(t, os.Remove(c.CustomersFile))
	listAsc, listDesc = false, false

	output, err := captureOutput(t, func() error { return runList(nil, nil) })
	require.NoError(t, err)
	assert.Contains(t, output, "No customers to display.")
}

func TestShowCommand(t *testing.T) {
	setupTestData(t, testCustomers, testPurchases)

	output, err := captureOutput(t, func() error { return runShow(nil, []string{"1000"}) })
	require.NoError(t, err)
	assert.Contains(t, output, "Account #: 1000")
	assert.Contains(t, output, "Name      : John Doe")
	assert.Contains(t, output, "Civic")
	assert.Contains(t, output, "CR-V")
	assert.Contains(t, output, "48000.00")
	assert.NotContains(t, output, "Model 3")

	output, err = captureOutput(t, func() error { return runShow(nil, []string{"1002"}) })
	require.NoError(t, err)
	assert.Contains(t, output, "No purchases found for account 1002")
}

func TestShowNonExistentCustomer(t *testing.T) {
	setupTestData(t, testCustomers, testPurchases)

	_, err := captureOutput(t, func() error { return runShow(nil, []string{"4242"}) })
	var notFound *cli.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, 4242, notFound.Account)
}

func TestShowInvalidAccount(t *testing.T) {
	setupTestData(t, testCustomers, testPurchases)

	_, err := captureOutput(t, func() error { return runShow(nil, []string{"10a0"}) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "digits only")
}

func TestTotalCommand(t *testing.T) {
	setupTestData(t, testCustomers, testPurchases+"777,Golf,VW,Black,2023-03-01,1500\n")

	tests := []struct {
		account string
		want    string
	}{
		{"1000", "Total spend for account 1000: $48000.00"},
		{"1001", "Total spend for account 1001: $41990.50"},
		{"1002", "Total spend for account 1002: $0.00"},
		{"777", "Total spend for account 777: $1500.00"},
	}

	for _, tt := range tests {
		t.Run(tt.account, func(t *testing.T) {
			output, err := captureOutput(t, func() error { return runTotal(nil, []string{tt.account}) })
			require.NoError(t, err)
			assert.Contains(t, output, tt.want)
		})
	}
}

func TestEditCommand(t *testing.T) {
	t.Run("flags replace only the given fields", func(t *testing.T) {
		c := setupTestData(t, testCustomers, testPurchases)
		resetFlags(t, editCmd.Flags())
		require.NoError(t, editCmd.Flags().Set("city", "Sparks"))
		require.NoError(t, editCmd.Flags().Set("phone", ""))

		output, err := captureOutput(t, func() error { return runEdit(editCmd, []string{"1000"}) })
		require.NoError(t, err)
		assert.Contains(t, output, "Customer 1000 updated.")

		assert.Equal(t,
			"John,Doe,1000,1 Main St,Sparks,NV,89501,\n"+
				"Ann,Lee,1001,2 Oak Ave,Elko,NV,89801,555-0101\n"+
				"Bob,Adams,1002,3 Pine Rd,Ely,NV,89301,555-0102\n",
			readFile(t, c.CustomersFile))
		assert.Equal(t, testPurchases, readFile(t, c.PurchasesFile))
	})

	t.Run("no flags is an error", func(t *testing.T) {
		setupTestData(t, testCustomers, testPurchases)
		resetFlags(t, editCmd.Flags())

		_, err := captureOutput(t, func() error { return runEdit(editCmd, []string{"1000"}) })
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no changes specified")
	})

	t.Run("missing account", func(t *testing.T) {
		setupTestData(t, testCustomers, testPurchases)
		resetFlags(t, editCmd.Flags())
		require.NoError(t, editCmd.Flags().Set("city", "Sparks"))

		_, err := captureOutput(t, func() error { return runEdit(editCmd, []string{"4242"}) })
		var notFound *cli.NotFoundError
		assert.True(t, errors.As(err, &notFound))
	})

	resetFlags(t, editCmd.Flags())
}

func TestEditCommandInteractive(t *testing.T) {
	c := setupTestData(t, testCustomers, testPurchases)
	resetFlags(t, editCmd.Flags())
	t.Cleanup(func() { resetFlags(t, editCmd.Flags()) })
	require.NoError(t, editCmd.Flags().Set("interactive", "true"))

	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "sed -i s/Elko/Carlin/")

	output, err := captureOutput(t, func() error { return runEdit(editCmd, []string{"1001"}) })
	require.NoError(t, err)
	assert.Contains(t, output, "Customer 1001 updated.")
	assert.Contains(t, readFile(t, c.CustomersFile), "Ann,Lee,1001,2 Oak Ave,Carlin,NV,89801,555-0101\n")

	t.Setenv("EDITOR", "true")
	output, err = captureOutput(t, func() error { return runEdit(editCmd, []string{"1001"}) })
	require.NoError(t, err)
	assert.Contains(t, output, "No changes.")
}

func TestDiffCustomer(t *testing.T) {
	before := editableCustomer{FirstName: "John", LastName: "Doe", City: "Reno", Phone: "555-0100"}
	after := before
	after.City = "Sparks"
	after.Phone = ""

	changes := diffCustomer(before, after)
	require.NotNil(t, changes.City)
	assert.Equal(t, "Sparks", *changes.City)
	require.NotNil(t, changes.Phone)
	assert.Equal(t, "", *changes.Phone)
	assert.Nil(t, changes.FirstName)
	assert.Nil(t, changes.LastName)

	assert.True(t, diffCustomer(before, before).IsEmpty())
}

func TestDeleteCommand(t *testing.T) {
	c := setupTestData(t, testCustomers, testPurchases)
	deleteYes = true
	t.Cleanup(func() { deleteYes = false })

	output, err := captureOutput(t, func() error { return runDelete(nil, []string{"1000"}) })
	require.NoError(t, err)
	assert.Contains(t, output, "Deleted customer 1000 and 2 purchase(s).")

	assert.Equal(t,
		"Ann,Lee,1001,2 Oak Ave,Elko,NV,89801,555-0101\n"+
			"Bob,Adams,1002,3 Pine Rd,Ely,NV,89301,555-0102\n",
		readFile(t, c.CustomersFile))
	assert.Equal(t, "1001,Model 3,Tesla,White,2023-01-15,41990.5\n", readFile(t, c.PurchasesFile))

	_, err = captureOutput(t, func() error { return runDelete(nil, []string{"1000"}) })
	var notFound *cli.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestExportCommand(t *testing.T) {
	c := setupTestData(t, testCustomers, testPurchases)

	t.Run("configured file", func(t *testing.T) {
		exportOut = ""
		output, err := captureOutput(t, func() error { return runExport(nil, nil) })
		require.NoError(t, err)
		assert.Contains(t, output, "Data successfully exported to "+c.ExportFile)

		report := readFile(t, c.ExportFile)
		assert.Contains(t, report, "Customer #3\nName: Bob Adams\n")
		assert.Contains(t, report, "Bob Adams (Acct 1002): $0.00\n")
	})

	t.Run("--out overrides", func(t *testing.T) {
		exportOut = filepath.Join(t.TempDir(), "report.txt")
		t.Cleanup(func() { exportOut = "" })

		_, err := captureOutput(t, func() error { return runExport(nil, nil) })
		require.NoError(t, err)
		assert.Contains(t, readFile(t, exportOut), "Total Spent By Customers")
	})

	t.Run("unwritable path", func(t *testing.T) {
		exportOut = filepath.Join(t.TempDir(), "missing", "report.txt")
		t.Cleanup(func() { exportOut = "" })

		_, err := captureOutput(t, func() error { return runExport(nil, nil) })
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not open")
	})
}

func TestDumpCommand(t *testing.T) {
	setupTestData(t, testCustomers, testPurchases)

	output, err := captureOutput(t, func() error { return runDump(nil, nil) })
	require.NoError(t, err)
	assert.Contains(t, output, "customers:\n")
	assert.Contains(t, output, "first_name: John")
	assert.Contains(t, output, "purchases:\n")
	assert.Contains(t, output, "item: Model 3")
	assert.Contains(t, output, "amount: 41990.5")
}

func TestValidateCommand(t *testing.T) {
	var exitCode int
	exitFunc = func(code int) { exitCode = code }
	t.Cleanup(func() { exitFunc = os.Exit })

	t.Run("clean data", func(t *testing.T) {
		setupTestData(t, testCustomers, testPurchases)
		validateFix = false
		exitCode = 0

		output, err := captureOutput(t, func() error { return runValidate(nil, nil) })
		require.NoError(t, err)
		assert.Contains(t, output, "No issues found")
		assert.Equal(t, 0, exitCode)
	})

	t.Run("issues exit non-zero", func(t *testing.T) {
		c := setupTestData(t, testCustomers, testPurchases+"777,Golf,VW,Black,03/01/2023,1500\n")
		validateFix = false
		exitCode = 0

		output, err := captureOutput(t, func() error { return runValidate(nil, nil) })
		require.NoError(t, err)
		assert.Contains(t, output, "Found 2 issue(s)")
		assert.Contains(t, output, "purchase #4 [orphan]")
		assert.Contains(t, output, "purchase #4 [date]")
		assert.Equal(t, 1, exitCode)
		assert.Contains(t, readFile(t, c.PurchasesFile), "777,Golf", "validate without --fix must not write")
	})

	t.Run("fix removes orphans", func(t *testing.T) {
		c := setupTestData(t, testCustomers, testPurchases+"777,Golf,VW,Black,2023-03-01,1500\n")
		validateFix = true
		t.Cleanup(func() { validateFix = false })
		exitCode = 0

		output, err := captureOutput(t, func() error { return runValidate(nil, nil) })
		require.NoError(t, err)
		assert.Contains(t, output, "acct 777: removed 1 orphan purchase(s)")
		assert.Contains(t, output, "All fixable issues resolved.")
		assert.Equal(t, 0, exitCode)
		assert.Equal(t, testPurchases, readFile(t, c.PurchasesFile))
	})
}

func TestCompleteAccounts(t *testing.T) {
	setupTestData(t, testCustomers, testPurchases)

	completions, directive := completeAccounts(nil, nil, "100")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	assert.Equal(t, []string{"1000\tJohn Doe", "1001\tAnn Lee", "1002\tBob Adams"}, completions)

	completions, _ = completeAccounts(nil, nil, "1001")
	assert.Equal(t, []string{"1001\tAnn Lee"}, completions)

	completions, _ = completeAccounts(nil, []string{"1000"}, "")
	assert.Empty(t, completions)
}
