package usecase

import "errors"

var (
	// ErrPortfolioNotFound is returned when a portfolio cannot be found by ID.
	ErrPortfolioNotFound = errors.New("portfolio not found")
)
