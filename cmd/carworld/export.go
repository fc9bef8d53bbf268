package main

import (
	"fmt"

	"github.com/jacksmith/carworld/internal/ops"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the customer and purchase report",
	Long: `Write a human-readable report of every customer, every purchase, and
each customer's total spend.

The report goes to the configured export file (output.txt by default).
Use --out to write somewhere else for this run only.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var exportOut string

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write the report to this file instead")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	customers, purchases, err := openStores()
	if err != nil {
		return err
	}

	path := cfg.ExportFile
	if exportOut != "" {
		path = exportOut
	}

	if err := ops.ExportReport(path, customers, purchases); err != nil {
		return err
	}

	fmt.Printf("Data successfully exported to %s\n", path)
	return nil
}
