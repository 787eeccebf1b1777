package ledger

import (
	"time"

	"github.com/centavohq/centavo/internal/model"
)

// Ideal percentages of the 50/30/20 rule.
const (
	TargetNecessityPct = 50.0
	TargetWantPct      = 30.0
	TargetSavingsPct   = 20.0
)

// deviationTolerance is the band, in percentage points, within which a
// bucket counts as on target.
const deviationTolerance = 5.0

// Window is a half-open reporting interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether a date falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// MonthWindow returns the window covering one calendar month.
func MonthWindow(year int, month time.Month) Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}

// CurrentMonthWindow returns the window for the month containing now.
// This is the default reporting window of the budget aggregator.
func CurrentMonthWindow(now time.Time) Window {
	return MonthWindow(now.Year(), now.Month())
}

// LookbackMode selects how trailing windows are measured. The source data
// was inconsistent about this, so it is a parameter rather than a policy.
type LookbackMode int

const (
	// LookbackCalendarMonths measures from the first day of the month
	// N-1 months before the current one.
	LookbackCalendarMonths LookbackMode = iota
	// LookbackFixedDays measures a flat 30 days per month of lookback.
	LookbackFixedDays
)

// LookbackWindow returns a trailing window ending just after now.
func LookbackWindow(now time.Time, months int, mode LookbackMode) Window {
	end := now.Add(time.Nanosecond)
	if mode == LookbackFixedDays {
		return Window{Start: now.AddDate(0, 0, -30*months), End: end}
	}
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	start = start.AddDate(0, -(months - 1), 0)
	return Window{Start: start, End: end}
}

// Standing is the advisory classification of a bucket's deviation from its
// ideal percentage.
type Standing string

const (
	// StandingOnTarget means the bucket is within tolerance of its ideal.
	StandingOnTarget Standing = "on_target"
	// StandingOverAllocated means a spending bucket exceeds its ideal.
	StandingOverAllocated Standing = "over_allocation"
	// StandingUnderAllocated means a spending bucket sits below its ideal.
	StandingUnderAllocated Standing = "under_allocation"
	// StandingAheadOfTarget means savings exceed their ideal. For the
	// savings bucket a positive deviation is favorable, not a warning.
	StandingAheadOfTarget Standing = "ahead_of_target"
	// StandingUnderTarget means savings fall short of their ideal.
	StandingUnderTarget Standing = "under_target"
)

// ClassSummary is the aggregate for one budget bucket.
type ClassSummary struct {
	Standing      Standing
	Actual        float64
	Ideal         float64
	PercentActual float64
	Deviation     float64
}

// BudgetReport is the result of a 50/30/20 aggregation over one window.
type BudgetReport struct {
	Classes      map[model.BudgetClass]ClassSummary
	Income       float64
	Unclassified int
	HasIncome    bool
}

// SummarizeBudget aggregates paid transactions in the window against the
// 50/30/20 targets. Income is the sum of paid income transactions; each
// spending bucket sums paid expenses with that budget class, and every paid
// investment is folded into the savings bucket regardless of its own class.
//
// With zero income the report is zeroed rather than failing: every
// percentage is 0 and no deviation is flagged. Callers distinguish "no
// income yet" from "zero income, real data" through HasIncome.
// Transactions with unrecognized types are excluded and counted.
func SummarizeBudget(transactions []model.Transaction, w Window) BudgetReport {
	report := BudgetReport{
		Classes: map[model.BudgetClass]ClassSummary{
			model.BudgetNecessity: {},
			model.BudgetWant:      {},
			model.BudgetSavings:   {},
		},
	}

	actual := map[model.BudgetClass]float64{}
	for _, t := range transactions {
		if t.Status != model.StatusPaid || !w.Contains(t.Date) {
			continue
		}
		switch t.Type {
		case model.TypeIncome:
			report.Income += t.Amount
			report.HasIncome = true
		case model.TypeExpense:
			switch t.BudgetClass {
			case model.BudgetNecessity, model.BudgetWant, model.BudgetSavings:
				actual[t.BudgetClass] += t.Amount
			default:
				actual[model.BudgetOther] += t.Amount
			}
		case model.TypeInvestment:
			actual[model.BudgetSavings] += t.Amount
		default:
			report.Unclassified++
		}
	}

	for class, target := range map[model.BudgetClass]float64{
		model.BudgetNecessity: TargetNecessityPct,
		model.BudgetWant:      TargetWantPct,
		model.BudgetSavings:   TargetSavingsPct,
	} {
		summary := ClassSummary{Actual: actual[class], Standing: StandingOnTarget}
		if report.Income > 0 {
			summary.Ideal = report.Income * target / 100
			summary.PercentActual = summary.Actual / report.Income * 100
			summary.Deviation = summary.PercentActual - target
			summary.Standing = standingFor(class, summary.Deviation)
		}
		report.Classes[class] = summary
	}

	return report
}

func standingFor(class model.BudgetClass, deviation float64) Standing {
	if deviation >= -deviationTolerance && deviation <= deviationTolerance {
		return StandingOnTarget
	}
	// Savings inverts the reading: spending buckets above target are a
	// problem, savings above target are the goal.
	if class == model.BudgetSavings {
		if deviation > 0 {
			return StandingAheadOfTarget
		}
		return StandingUnderTarget
	}
	if deviation > 0 {
		return StandingOverAllocated
	}
	return StandingUnderAllocated
}
