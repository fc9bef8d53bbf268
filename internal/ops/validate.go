package ops

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/jacksmith/carworld/internal/storage"
)

// ValidationErrorType represents the type of validation error.
type ValidationErrorType string

const (
	ValidationErrorDuplicateAccount ValidationErrorType = "duplicate_account"
	ValidationErrorOrphanPurchase   ValidationErrorType = "orphan_purchase"
	ValidationErrorNegativeAmount   ValidationErrorType = "negative_amount"
	ValidationErrorInvalidDate      ValidationErrorType = "invalid_date"
)

// ValidationError represents a data integrity issue.
type ValidationError struct {
	Type    ValidationErrorType
	ItemID  string // "acct 1000" or "purchase #3"
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s - %s", e.ItemID, e.Type, e.Message)
}

// ValidationFix represents an auto-repair action taken.
type ValidationFix struct {
	Type        ValidationErrorType
	ItemID      string
	Description string
}

// datePattern matches the YYYY-MM-DD shape. It does not check that the date
// exists on the calendar.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks both stores for data integrity issues. Nothing is
// modified. Purchases are numbered from 1 in store order.
func Validate(customers *storage.CustomerStore, purchases *storage.PurchaseStore) []ValidationError {
	var errors []ValidationError

	// Check for duplicate account numbers
	seen := make(map[int]int)
	for _, c := range customers.All() {
		seen[c.AccountNumber]++
		if seen[c.AccountNumber] == 2 {
			errors = append(errors, ValidationError{
				Type:    ValidationErrorDuplicateAccount,
				ItemID:  accountID(c.AccountNumber),
				Message: "account number is used by more than one customer",
			})
		}
	}

	for i, p := range purchases.All() {
		id := purchaseID(i)
		if _, ok := seen[p.AccountNumber]; !ok {
			errors = append(errors, ValidationError{
				Type:    ValidationErrorOrphanPurchase,
				ItemID:  id,
				Message: fmt.Sprintf("no customer has account %d", p.AccountNumber),
			})
		}
		if p.Amount < 0 {
			errors = append(errors, ValidationError{
				Type:    ValidationErrorNegativeAmount,
				ItemID:  id,
				Message: fmt.Sprintf("amount %s is negative", strconv.FormatFloat(p.Amount, 'f', 2, 64)),
			})
		}
		if !datePattern.MatchString(p.Date) {
			errors = append(errors, ValidationError{
				Type:    ValidationErrorInvalidDate,
				ItemID:  id,
				Message: fmt.Sprintf("date %q is not YYYY-MM-DD", p.Date),
			})
		}
	}

	return errors
}

// ValidateAndFix removes orphan purchases, the only issue that can be
// repaired without guessing. Other issues are left for Validate to report.
func ValidateAndFix(customers *storage.CustomerStore, purchases *storage.PurchaseStore) []ValidationFix {
	var fixes []ValidationFix

	orphaned := make(map[int]bool)
	for _, p := range purchases.All() {
		if !customers.Exists(p.AccountNumber) {
			orphaned[p.AccountNumber] = true
		}
	}

	// Walk accounts in purchase order so the fix list is deterministic.
	for _, p := range purchases.All() {
		if !orphaned[p.AccountNumber] {
			continue
		}
		delete(orphaned, p.AccountNumber)
		removed := purchases.DeleteAllForAccount(p.AccountNumber)
		fixes = append(fixes, ValidationFix{
			Type:        ValidationErrorOrphanPurchase,
			ItemID:      accountID(p.AccountNumber),
			Description: fmt.Sprintf("removed %d orphan purchase(s)", removed),
		})
	}

	return fixes
}

func accountID(account int) string {
	return "acct " + strconv.Itoa(account)
}

func purchaseID(i int) string {
	return "purchase #" + strconv.Itoa(i+1)
}
