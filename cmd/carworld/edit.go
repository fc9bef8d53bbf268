package main

import (
	"fmt"

	"github.com/jacksmith/carworld/internal/cli"
	"github.com/jacksmith/carworld/internal/model"
	"github.com/jacksmith/carworld/internal/ops"
	"github.com/jacksmith/carworld/internal/storage"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var editCmd = &cobra.Command{
	Use:   "edit <account>",
	Short: "Edit a customer",
	Long: `Edit a customer's fields and save the customer file.

Use flags to change specific fields, or -i to edit in $EDITOR.
A flag given with an empty value clears the field.
The account number itself cannot be changed.

Examples:
  carworld edit 1000 --city=Sparks
  carworld edit 1000 --phone=555-0199 --street="9 Lake Dr"
  carworld edit 1000 --phone=                # clears the phone
  carworld edit 1000 -i                      # open in $EDITOR`,
	Args:              cobra.ExactArgs(1),
	RunE:              runEdit,
	ValidArgsFunction: completeAccounts,
}

var (
	editFirst       string
	editLast        string
	editStreet      string
	editCity        string
	editState       string
	editZip         string
	editPhone       string
	editInteractive bool
)

func init() {
	editCmd.Flags().StringVar(&editFirst, "first", "", "set first name")
	editCmd.Flags().StringVar(&editLast, "last", "", "set last name")
	editCmd.Flags().StringVar(&editStreet, "street", "", "set street address")
	editCmd.Flags().StringVar(&editCity, "city", "", "set city")
	editCmd.Flags().StringVar(&editState, "state", "", "set state")
	editCmd.Flags().StringVar(&editZip, "zip", "", "set ZIP code")
	editCmd.Flags().StringVar(&editPhone, "phone", "", "set phone number")
	editCmd.Flags().BoolVarP(&editInteractive, "interactive", "i", false, "edit in $EDITOR")

	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	account, err := ops.ParseAccount(args[0])
	if err != nil {
		return err
	}

	customers, purchases, err := openStores()
	if err != nil {
		return err
	}

	var changes model.CustomerChanges
	if editInteractive {
		changes, err = editInEditor(customers, account)
		if err != nil {
			return err
		}
	} else {
		flags := []struct {
			name  string
			value *string
			dst   **string
		}{
			{"first", &editFirst, &changes.FirstName},
			{"last", &editLast, &changes.LastName},
			{"street", &editStreet, &changes.Street},
			{"city", &editCity, &changes.City},
			{"state", &editState, &changes.State},
			{"zip", &editZip, &changes.Zip},
			{"phone", &editPhone, &changes.Phone},
		}
		for _, f := range flags {
			if cmd.Flags().Changed(f.name) {
				*f.dst = f.value
			}
		}
		if changes.IsEmpty() {
			return &cli.ValidationError{Message: "no changes specified"}
		}
	}

	if changes.IsEmpty() {
		fmt.Println("No changes.")
		return nil
	}

	if err := ops.UpdateCustomer(customers, account, changes); err != nil {
		return err
	}
	if err := saveStores(customers, purchases); err != nil {
		return err
	}

	fmt.Printf("Customer %d updated.\n", account)
	return nil
}

// editableCustomer is the YAML shape shown in $EDITOR.
type editableCustomer struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Street    string `yaml:"street"`
	City      string `yaml:"city"`
	State     string `yaml:"state"`
	Zip       string `yaml:"zip"`
	Phone     string `yaml:"phone"`
}

func editInEditor(customers *storage.CustomerStore, account int) (model.CustomerChanges, error) {
	var changes model.CustomerChanges

	c, ok := customers.Get(account)
	if !ok {
		return changes, &cli.NotFoundError{Type: "customer", Account: account}
	}

	editable := editableCustomer{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Street:    c.Street,
		City:      c.City,
		State:     c.State,
		Zip:       c.Zip,
		Phone:     c.Phone,
	}

	content, err := yaml.Marshal(&editable)
	if err != nil {
		return changes, fmt.Errorf("failed to marshal customer: %w", err)
	}

	header := fmt.Sprintf("# Editing customer %d\n# Save and close editor to apply changes. Exit without saving to cancel.\n\n", account)
	content = append([]byte(header), content...)

	edited, err := cli.EditInEditor(content, ".yaml")
	if err != nil {
		return changes, err
	}

	var updated editableCustomer
	if err := yaml.Unmarshal(edited, &updated); err != nil {
		return changes, fmt.Errorf("invalid YAML: %w", err)
	}

	return diffCustomer(editable, updated), nil
}

// diffCustomer returns changes for the fields that differ between before
// and after.
func diffCustomer(before, after editableCustomer) model.CustomerChanges {
	var changes model.CustomerChanges
	pairs := []struct {
		old, new string
		dst      **string
	}{
		{before.FirstName, after.FirstName, &changes.FirstName},
		{before.LastName, after.LastName, &changes.LastName},
		{before.Street, after.Street, &changes.Street},
		{before.City, after.City, &changes.City},
		{before.State, after.State, &changes.State},
		{before.Zip, after.Zip, &changes.Zip},
		{before.Phone, after.Phone, &changes.Phone},
	}
	for _, p := range pairs {
		if p.old != p.new {
			value := p.new
			*p.dst = &value
		}
	}
	return changes
}
