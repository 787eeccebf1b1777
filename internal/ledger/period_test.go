package ledger

import (
	"testing"
	"time"
)

func TestPeriodOf(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{name: "first of month", date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), want: FirstHalf},
		{name: "fifteenth", date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), want: FirstHalf},
		{name: "sixteenth", date: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), want: SecondHalf},
		{name: "last of long month", date: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), want: SecondHalf},
		{name: "leap day", date: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), want: SecondHalf},
		{name: "last of february non-leap", date: time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC), want: SecondHalf},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PeriodOf(tt.date); got != tt.want {
				t.Errorf("PeriodOf(%v) = %d, want %d", tt.date, got, tt.want)
			}
		})
	}
}

func TestPeriodOf_AllDaysClassified(t *testing.T) {
	// Every day of a leap year lands in exactly one of the two halves.
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for day.Year() == 2024 {
		p := PeriodOf(day)
		if p != FirstHalf && p != SecondHalf {
			t.Fatalf("PeriodOf(%v) = %d, want 1 or 2", day, p)
		}
		day = day.AddDate(0, 0, 1)
	}
}
