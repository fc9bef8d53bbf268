// Package main is the entry point for the carworld CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/carworld/internal/cli"
	"github.com/jacksmith/carworld/internal/config"
	"github.com/jacksmith/carworld/internal/logging"
	"github.com/jacksmith/carworld/internal/menu"
	"github.com/jacksmith/carworld/internal/storage"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var (
	configPath string
	loader     = config.NewLoader()

	// cfg is resolved once per invocation in PersistentPreRunE.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "carworld",
	Short: "carworld - customer and purchase inventory for a car dealership",
	Long: `carworld keeps a dealership's customers and their vehicle purchases in
two plain comma-separated files.

Run without a subcommand to start the interactive menu. The subcommands
below cover the same operations for scripting.

Settings come from flags, CARWORLD_* environment variables, and an optional
.carworld.yaml in the working directory, in that order of precedence.`,
	Version:           Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("carworld version {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default .carworld.yaml if present)")
	flags.String("customers", config.DefaultCustomersFile, "customer data file")
	flags.String("purchases", config.DefaultPurchasesFile, "purchase data file")
	flags.String("export", config.DefaultExportFile, "export report file")
	flags.String("log-level", config.DefaultLogLevel, "log level (DEBUG, INFO, NOTICE, WARNING, ERROR, CRITICAL)")
	flags.String("color", config.DefaultColor, "color output (auto, always, never)")

	v := loader.Viper()
	v.BindPFlag(config.KeyCustomersFile, flags.Lookup("customers"))
	v.BindPFlag(config.KeyPurchasesFile, flags.Lookup("purchases"))
	v.BindPFlag(config.KeyExportFile, flags.Lookup("export"))
	v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	v.BindPFlag(config.KeyColor, flags.Lookup("color"))
}

func setup(cmd *cobra.Command, args []string) error {
	c, err := loader.Load(configPath)
	if err != nil {
		return err
	}
	if err := logging.Setup(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if err := cli.ConfigureColor(c.Color); err != nil {
		return err
	}
	cfg = c
	return nil
}

func runMenu(cmd *cobra.Command, args []string) error {
	p := cli.NewPrompter(os.Stdin, os.Stdout)
	return menu.New(cfg, p, storage.NewCustomerStore(), storage.NewPurchaseStore()).Run()
}
