package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/carworld/internal/cli"
	"github.com/jacksmith/carworld/internal/ops"
	"github.com/jacksmith/carworld/internal/storage"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check data integrity",
	Long: `Check both data files for integrity issues.

Checks for:
- Duplicate account numbers
- Orphan purchases (account has no customer)
- Negative purchase amounts
- Dates not in YYYY-MM-DD form

Use --fix to auto-repair fixable issues (removes orphan purchases and saves).`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

var validateFix bool

func init() {
	validateCmd.Flags().BoolVar(&validateFix, "fix", false, "auto-repair fixable issues")
	rootCmd.AddCommand(validateCmd)
}

// exitFunc is replaced in tests.
var exitFunc = os.Exit

func runValidate(cmd *cobra.Command, args []string) error {
	customers, purchases, err := openStores()
	if err != nil {
		return err
	}

	if validateFix {
		return runValidateAndFix(customers, purchases)
	}
	return runValidateOnly(customers, purchases)
}

func runValidateOnly(customers *storage.CustomerStore, purchases *storage.PurchaseStore) error {
	errors := ops.Validate(customers, purchases)
	if len(errors) == 0 {
		fmt.Println(cli.Green("No issues found."))
		return nil
	}

	fmt.Printf("Found %d issue(s):\n\n", len(errors))
	printValidationErrors(errors)

	exitFunc(1)
	return nil
}

func runValidateAndFix(customers *storage.CustomerStore, purchases *storage.PurchaseStore) error {
	errors := ops.Validate(customers, purchases)
	if len(errors) == 0 {
		fmt.Println(cli.Green("No issues found."))
		return nil
	}

	fmt.Printf("Found %d issue(s). Attempting to fix...\n\n", len(errors))

	fixes := ops.ValidateAndFix(customers, purchases)
	if len(fixes) > 0 {
		if err := saveStores(customers, purchases); err != nil {
			return err
		}
		fmt.Println("Fixes applied:")
		for _, f := range fixes {
			fmt.Printf("  %s: %s\n", f.ItemID, f.Description)
		}
		fmt.Println()
	}

	remaining := ops.Validate(customers, purchases)
	if len(remaining) == 0 {
		fmt.Println(cli.Green("All fixable issues resolved."))
		return nil
	}

	fmt.Printf("Remaining issues (%d) that cannot be auto-fixed:\n\n", len(remaining))
	printValidationErrors(remaining)

	exitFunc(1)
	return nil
}

func printValidationErrors(errors []ops.ValidationError) {
	for _, e := range errors {
		fmt.Printf("%s %s: %s\n", e.ItemID, formatValidationErrorType(e.Type), e.Message)
	}
}

func formatValidationErrorType(t ops.ValidationErrorType) string {
	switch t {
	case ops.ValidationErrorOrphanPurchase:
		return cli.Yellow("[orphan]")
	case ops.ValidationErrorDuplicateAccount:
		return cli.Red("[duplicate]")
	case ops.ValidationErrorNegativeAmount:
		return cli.Red("[amount]")
	case ops.ValidationErrorInvalidDate:
		return cli.Red("[date]")
	default:
		return fmt.Sprintf("[%s]", t)
	}
}
