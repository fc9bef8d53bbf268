package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/carworld/internal/cli"
	"github.com/jacksmith/carworld/internal/ops"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <account>",
	Short: "Delete a customer and their purchases",
	Long: `Delete a customer and every purchase recorded against the account,
then save both data files.

Asks for confirmation unless --yes is given.

Examples:
  carworld delete 1003
  carworld delete 1003 --yes`,
	Args:              cobra.ExactArgs(1),
	RunE:              runDelete,
	ValidArgsFunction: completeAccounts,
}

var deleteYes bool

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip confirmation")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	account, err := ops.ParseAccount(args[0])
	if err != nil {
		return err
	}

	customers, purchases, err := openStores()
	if err != nil {
		return err
	}

	if !customers.Exists(account) {
		return &cli.NotFoundError{Type: "customer", Account: account}
	}

	if !deleteYes {
		p := cli.NewPrompter(os.Stdin, os.Stdout)
		ok, err := p.Confirm(fmt.Sprintf("Are you sure you want to delete account %d? (y/n): ", account))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println(cli.Gray("Delete canceled."))
			return nil
		}
	}

	removed, err := ops.DeleteCustomer(customers, purchases, account)
	if err != nil {
		return err
	}
	if err := saveStores(customers, purchases); err != nil {
		return err
	}

	fmt.Printf("Deleted customer %d and %d purchase(s).\n", account, removed)
	return nil
}
