package model

import (
	"fmt"
	"time"
)

// BudgetClass is the 50/30/20 bucket a category maps to.
type BudgetClass string

const (
	// BudgetNecessity covers essential spending (housing, food, transport).
	BudgetNecessity BudgetClass = "necessity"
	// BudgetWant covers discretionary spending.
	BudgetWant BudgetClass = "want"
	// BudgetSavings covers savings and invested money.
	BudgetSavings BudgetClass = "savings"
	// BudgetOther is the fallback for spending outside the three buckets.
	BudgetOther BudgetClass = "other"
)

// Category represents an entry in the category registry. Transactions
// reference categories by name; the reference is soft and deleting a
// category does not cascade.
type Category struct {
	CreatedAt   time.Time
	Name        string
	Type        TransactionType
	BudgetClass BudgetClass
	ID          int
	IsActive    bool
}

// Validate checks that the category carries the fields the classifier
// depends on.
func (c *Category) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCategory)
	}
	switch c.Type {
	case TypeIncome, TypeExpense, TypeInvestment:
	default:
		return fmt.Errorf("%w: unknown transaction type %q", ErrInvalidCategory, c.Type)
	}
	switch c.BudgetClass {
	case BudgetNecessity, BudgetWant, BudgetSavings, BudgetOther:
	default:
		return fmt.Errorf("%w: unknown budget class %q", ErrInvalidCategory, c.BudgetClass)
	}
	return nil
}
