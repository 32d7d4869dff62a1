package repositories

import "errors"

// Sentinel errors for the order-creation preconditions. Callers distinguish
// them with errors.Is; anything else wrapping out of a repository is a
// storage failure.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)
