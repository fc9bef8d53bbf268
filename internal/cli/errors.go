package cli

import (
	"fmt"
)

// NotFoundError indicates a customer lookup missed.
type NotFoundError struct {
	Type    string // "customer" or "purchase"
	Account int    // the account number that was not found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with account %d not found", e.Type, e.Account)
}

// ValidationError indicates a value was rejected.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// DuplicateAccountError indicates an account number is already in use.
type DuplicateAccountError struct {
	Account int
}

func (e *DuplicateAccountError) Error() string {
	return fmt.Sprintf("account %d already exists", e.Account)
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}
