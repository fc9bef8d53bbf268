package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/carworld/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers",
	Long: `List all customers as a numbered table.

By default customers are shown in file order.

Sort flags:
  --asc    Sort by last name, then first name, A to Z
  --desc   Sort by last name, then first name, Z to A

Sorting only affects the output; the data file is not rewritten.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listAsc  bool
	listDesc bool
)

func init() {
	listCmd.Flags().BoolVar(&listAsc, "asc", false, "sort A to Z")
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "sort Z to A")
	listCmd.MarkFlagsMutuallyExclusive("asc", "desc")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if listAsc && listDesc {
		return fmt.Errorf("--asc and --desc cannot be used together")
	}

	customers, _, err := openStores()
	if err != nil {
		return err
	}

	switch {
	case listAsc:
		customers.SortAscending()
	case listDesc:
		customers.SortDescending()
	}

	cli.RenderCustomers(os.Stdout, customers.All())
	return nil
}
