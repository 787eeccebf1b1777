package ledger

import "time"

// Period halves of a month, used for payday-cycle budgeting.
const (
	FirstHalf  = 1
	SecondHalf = 2
)

// PeriodOf returns the bi-weekly period for a date: 1 for days 1-15,
// 2 for the rest of the month. Total over all valid calendar dates.
func PeriodOf(date time.Time) int {
	if date.Day() <= 15 {
		return FirstHalf
	}
	return SecondHalf
}
