package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Persistence errors
	ErrNotFound          = fmt.Errorf("not found")
	ErrTransactionFailed = fmt.Errorf("transaction failed")
	ErrDatabase          = fmt.Errorf("database unavailable")
	ErrLocked            = fmt.Errorf("library is in use by another playq instance")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
