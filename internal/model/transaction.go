package model

import (
	"fmt"
	"math"
	"time"
)

// TransactionType classifies the direction of money flow for a transaction.
type TransactionType string

const (
	// TypeIncome represents money coming in (salary, freelance, refunds).
	TypeIncome TransactionType = "income"
	// TypeExpense represents money going out.
	TypeExpense TransactionType = "expense"
	// TypeInvestment represents money leaving the checking account into
	// invested capital. It reduces the account balance and is tracked
	// separately as invested capital.
	TypeInvestment TransactionType = "investment"
)

// TransactionStatus tracks the settlement state of a transaction.
type TransactionStatus string

const (
	// StatusPaid means the transaction has settled.
	StatusPaid TransactionStatus = "paid"
	// StatusPending means the transaction is recorded but not yet settled.
	StatusPending TransactionStatus = "pending"
	// StatusOverdue means a pending transaction passed its due date unpaid.
	StatusOverdue TransactionStatus = "overdue"
)

// Priority levels for a transaction.
const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

// Transaction is the atomic ledger record. Amounts are always non-negative;
// direction is carried by Type, never by the sign of Amount.
type Transaction struct {
	Date             time.Time
	DueDate          time.Time
	ID               string
	Description      string
	Category         string
	Type             TransactionType
	Status           TransactionStatus
	BudgetClass      BudgetClass
	Amount           float64
	Priority         int
	PeriodHalf       int // cached, derived from Date
	Installments     int // total count in the installment series
	InstallmentIndex int // 1-based position within the series
	Recurring        bool
	FixedExpense     bool
}

// Validate checks the structural invariants of a transaction. It does not
// check vocabulary; raw records pass through normalization first.
func (t *Transaction) Validate() error {
	if t.Description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidTransaction)
	}
	if math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
		return fmt.Errorf("%w: amount is not a finite number", ErrInvalidTransaction)
	}
	if t.Amount < 0 {
		return fmt.Errorf("%w: amount must be non-negative, got %.2f", ErrInvalidTransaction, t.Amount)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidTransaction)
	}
	if t.Installments < 1 {
		return fmt.Errorf("%w: installments must be at least 1, got %d", ErrInvalidTransaction, t.Installments)
	}
	if t.InstallmentIndex < 1 || t.InstallmentIndex > t.Installments {
		return fmt.Errorf("%w: installment index %d out of range 1..%d",
			ErrInvalidTransaction, t.InstallmentIndex, t.Installments)
	}
	if t.Priority < PriorityLow || t.Priority > PriorityHigh {
		return fmt.Errorf("%w: priority must be 1, 2 or 3, got %d", ErrInvalidTransaction, t.Priority)
	}
	return nil
}

// EffectiveDueDate returns the due date, falling back to the posting date
// when no due date was recorded.
func (t *Transaction) EffectiveDueDate() time.Time {
	if t.DueDate.IsZero() {
		return t.Date
	}
	return t.DueDate
}
