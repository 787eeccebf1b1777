package model

import (
	"fmt"
	"time"
)

// GoalStatus tracks a savings goal's lifecycle.
type GoalStatus string

const (
	// GoalActive means the goal is being worked toward.
	GoalActive GoalStatus = "active"
	// GoalCompleted means the current amount reached the target.
	GoalCompleted GoalStatus = "completed"
	// GoalCancelled means the goal was abandoned.
	GoalCancelled GoalStatus = "cancelled"
)

// Goal tracks progress toward a target amount by a deadline. Goals live
// outside the ledger core but share its amount and date vocabulary.
type Goal struct {
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Deadline      time.Time
	Title         string
	Description   string
	Category      string
	Status        GoalStatus
	TargetAmount  float64
	CurrentAmount float64
	ID            int
}

// Validate checks the goal's structural invariants.
func (g *Goal) Validate() error {
	if g.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidGoal)
	}
	if g.TargetAmount <= 0 {
		return fmt.Errorf("%w: target amount must be positive, got %.2f", ErrInvalidGoal, g.TargetAmount)
	}
	if g.CurrentAmount < 0 {
		return fmt.Errorf("%w: current amount must be non-negative, got %.2f", ErrInvalidGoal, g.CurrentAmount)
	}
	return nil
}

// ApplyProgress sets the goal's current amount and transitions the status to
// completed once the target is reached. Cancelled goals are left untouched.
func (g *Goal) ApplyProgress(amount float64) {
	if g.Status == GoalCancelled {
		return
	}
	g.CurrentAmount = amount
	if g.CurrentAmount >= g.TargetAmount {
		g.Status = GoalCompleted
	} else {
		g.Status = GoalActive
	}
}

// Progress returns completion as a percentage of the target, capped at 100.
func (g *Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	pct := g.CurrentAmount / g.TargetAmount * 100
	if pct > 100 {
		return 100
	}
	return pct
}
