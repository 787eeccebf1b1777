// Package model defines the ledger's core record types.
package model

import "errors"

// Validation errors shared across record types.
var (
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidGoal        = errors.New("invalid goal")
)
