package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/carworld/internal/cli"
	"github.com/jacksmith/carworld/internal/ops"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <account>",
	Short: "Show a customer and their purchases",
	Long: `Show the details for one customer followed by a table of every
purchase recorded against the account.`,
	Args:              cobra.ExactArgs(1),
	RunE:              runShow,
	ValidArgsFunction: completeAccounts,
}

var totalCmd = &cobra.Command{
	Use:   "total <account>",
	Short: "Show a customer's total spend",
	Long: `Show the sum of every purchase amount recorded against the account.

Accounts with no purchases total $0.00. The account does not need a
customer record, so totals for orphaned purchases can still be checked.`,
	Args:              cobra.ExactArgs(1),
	RunE:              runTotal,
	ValidArgsFunction: completeAccounts,
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(totalCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	account, err := ops.ParseAccount(args[0])
	if err != nil {
		return err
	}

	customers, purchases, err := openStores()
	if err != nil {
		return err
	}

	c, ok := customers.Get(account)
	if !ok {
		return &cli.NotFoundError{Type: "customer", Account: account}
	}

	fmt.Println("Customer Info")
	cli.RenderCustomer(os.Stdout, c)
	fmt.Println("Purchases")
	cli.RenderPurchases(os.Stdout, account, purchases.ListForAccount(account))
	return nil
}

func runTotal(cmd *cobra.Command, args []string) error {
	account, err := ops.ParseAccount(args[0])
	if err != nil {
		return err
	}

	_, purchases, err := openStores()
	if err != nil {
		return err
	}

	fmt.Printf("Total spend for account %d: %s\n", account, cli.FormatMoney(purchases.TotalSpend(account)))
	return nil
}
