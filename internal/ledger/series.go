package ledger

import (
	"time"

	"github.com/centavohq/centavo/internal/model"
)

// monthKeyLayout is the bucketing key format for monthly series.
const monthKeyLayout = "2006-01"

// MonthKey returns the "YYYY-MM" bucket key for a date.
func MonthKey(t time.Time) string {
	return t.Format(monthKeyLayout)
}

// MonthlySeries holds four parallel monthly totals keyed by "YYYY-MM".
// Months lists the keys chronologically; every month in the window is
// present in all four maps, with an explicit zero when nothing happened.
type MonthlySeries struct {
	Income     map[string]float64
	Expense    map[string]float64
	Investment map[string]float64
	Balance    map[string]float64
	Months     []string
}

// Ordered returns one of the series' maps as a slice in month order,
// suitable for feeding to Forecast.
func (s MonthlySeries) Ordered(series map[string]float64) []float64 {
	values := make([]float64, len(s.Months))
	for i, month := range s.Months {
		values[i] = series[month]
	}
	return values
}

// BuildMonthlySeries buckets paid transactions into monthly totals for the
// trailing window of months ending at the month containing end. Records
// with a zero date (a failed parse upstream) or an unrecognized type are
// skipped individually; they never abort the computation.
func BuildMonthlySeries(transactions []model.Transaction, end time.Time, months int) MonthlySeries {
	if months < 1 {
		months = 1
	}

	s := MonthlySeries{
		Income:     make(map[string]float64, months),
		Expense:    make(map[string]float64, months),
		Investment: make(map[string]float64, months),
		Balance:    make(map[string]float64, months),
		Months:     make([]string, 0, months),
	}

	first := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)
	for i := 0; i < months; i++ {
		key := MonthKey(first.AddDate(0, i, 0))
		s.Months = append(s.Months, key)
		s.Income[key] = 0
		s.Expense[key] = 0
		s.Investment[key] = 0
		s.Balance[key] = 0
	}

	for _, t := range transactions {
		if t.Status != model.StatusPaid || t.Date.IsZero() {
			continue
		}
		key := MonthKey(t.Date)
		if _, inWindow := s.Income[key]; !inWindow {
			continue
		}
		switch t.Type {
		case model.TypeIncome:
			s.Income[key] += t.Amount
		case model.TypeExpense:
			s.Expense[key] += t.Amount
		case model.TypeInvestment:
			s.Investment[key] += t.Amount
		}
	}

	for _, key := range s.Months {
		s.Balance[key] = s.Income[key] - s.Expense[key] - s.Investment[key]
	}

	return s
}

// ForecastMethod selects the projection algorithm.
type ForecastMethod string

const (
	// MethodMovingAverage repeats the mean of the last three observations.
	MethodMovingAverage ForecastMethod = "moving_average"
	// MethodLinearTrend extrapolates the last step, clamped to 20% of the
	// last observation per step to avoid runaway projections.
	MethodLinearTrend ForecastMethod = "linear_trend"
)

// trendClampRatio bounds the per-step delta of the linear trend method.
const trendClampRatio = 0.2

// Forecast projects horizon future values from an observed series. Fewer
// than two observations yield an empty forecast; that is a normal state,
// not an error. An unrecognized method repeats the last observed value.
func Forecast(values []float64, horizon int, method ForecastMethod) []float64 {
	if len(values) < 2 || horizon <= 0 {
		return nil
	}

	last := values[len(values)-1]
	forecast := make([]float64, horizon)

	switch method {
	case MethodMovingAverage:
		n := 3
		if len(values) < n {
			n = len(values)
		}
		var sum float64
		for _, v := range values[len(values)-n:] {
			sum += v
		}
		mean := sum / float64(n)
		for k := range forecast {
			forecast[k] = mean
		}
	case MethodLinearTrend:
		delta := last - values[len(values)-2]
		bound := trendClampRatio * abs(last)
		if delta > bound {
			delta = bound
		} else if delta < -bound {
			delta = -bound
		}
		for k := range forecast {
			forecast[k] = last + delta*float64(k+1)
		}
	default:
		for k := range forecast {
			forecast[k] = last
		}
	}

	return forecast
}

// FutureMonths generates horizon month keys following the last observed
// one, rolling December into January of the next year.
func FutureMonths(lastKey string, horizon int) ([]string, error) {
	last, err := time.Parse(monthKeyLayout, lastKey)
	if err != nil {
		return nil, err
	}
	keys := make([]string, horizon)
	for k := 0; k < horizon; k++ {
		keys[k] = MonthKey(last.AddDate(0, k+1, 0))
	}
	return keys, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
