package ledger

import (
	"fmt"
	"time"

	"github.com/centavohq/centavo/internal/model"
)

// ExpandInstallments derives the full installment series for a base
// transaction: the base itself at index 1 followed by one sibling per
// remaining installment, each advanced by a calendar month. Siblings copy
// every field from the base except date, due date, installment index and
// period half; they carry no ID, which the persistence layer assigns.
//
// Expansion happens exactly once, at creation time; the caller is
// responsible for persisting the returned batch as a single logical write
// and for never re-expanding a stored series.
func ExpandInstallments(base model.Transaction) ([]model.Transaction, error) {
	if base.Installments <= 0 {
		return nil, fmt.Errorf("installments must be positive, got %d", base.Installments)
	}

	base.InstallmentIndex = 1
	if base.DueDate.IsZero() {
		base.DueDate = base.Date
	}
	base.PeriodHalf = PeriodOf(base.Date)

	series := make([]model.Transaction, 0, base.Installments)
	series = append(series, base)

	for i := 2; i <= base.Installments; i++ {
		sibling := base
		sibling.ID = ""
		sibling.Date = AddMonths(base.Date, i-1)
		sibling.DueDate = AddMonths(base.DueDate, i-1)
		sibling.InstallmentIndex = i
		sibling.PeriodHalf = PeriodOf(sibling.Date)
		series = append(series, sibling)
	}

	return series, nil
}

// AddMonths advances a date by whole calendar months, clamping the day to
// the last valid day of the target month (Jan 31 + 1 month is Feb 28 or 29,
// never Mar 2).
func AddMonths(t time.Time, months int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month()+time.Month(months), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
