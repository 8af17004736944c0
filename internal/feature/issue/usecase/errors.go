// Package usecase implements the business logic for the issue feature.
package usecase

import "errors"

var (
	// ErrIssueNotFound is returned when an issue cannot be found by ID.
	ErrIssueNotFound = errors.New("issue not found")

	// ErrStockNotFound is returned when an issue targets an unknown stock.
	ErrStockNotFound = errors.New("stock not found")
)
