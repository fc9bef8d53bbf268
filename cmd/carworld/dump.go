package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/carworld/internal/model"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print all data as YAML",
	Long: `Print every customer and purchase as a YAML document.

This is a one-way export for viewing and sharing. It cannot be re-imported;
the comma-separated data files remain the source of truth.

Examples:
  carworld dump
  carworld dump > backup.yaml`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

// dumpDocument is the top-level YAML shape.
type dumpDocument struct {
	Customers []model.Customer `yaml:"customers"`
	Purchases []model.Purchase `yaml:"purchases"`
}

func runDump(cmd *cobra.Command, args []string) error {
	customers, purchases, err := openStores()
	if err != nil {
		return err
	}

	doc := dumpDocument{
		Customers: customers.All(),
		Purchases: purchases.All(),
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("failed to encode data: %w", err)
	}
	return enc.Close()
}
