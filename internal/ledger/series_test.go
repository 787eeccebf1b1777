package ledger

import (
	"math"
	"testing"
	"time"

	"github.com/centavohq/centavo/internal/model"
)

func TestBuildMonthlySeries(t *testing.T) {
	end := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	record := func(year int, month time.Month, typ model.TransactionType, amount float64) model.Transaction {
		return model.Transaction{
			Date:        time.Date(year, month, 10, 0, 0, 0, 0, time.UTC),
			Description: "txn",
			Type:        typ,
			Status:      model.StatusPaid,
			Amount:      amount,
		}
	}

	series := BuildMonthlySeries([]model.Transaction{
		record(2024, time.March, model.TypeIncome, 3000),
		record(2024, time.March, model.TypeExpense, 1000),
		record(2024, time.April, model.TypeIncome, 3000),
		record(2024, time.April, model.TypeInvestment, 500),
		record(2024, time.May, model.TypeExpense, 800),
		// Outside the window.
		record(2024, time.January, model.TypeIncome, 9999),
	}, end, 3)

	wantMonths := []string{"2024-03", "2024-04", "2024-05"}
	if len(series.Months) != len(wantMonths) {
		t.Fatalf("Months = %v, want %v", series.Months, wantMonths)
	}
	for i, month := range wantMonths {
		if series.Months[i] != month {
			t.Errorf("Months[%d] = %q, want %q", i, series.Months[i], month)
		}
	}

	if series.Income["2024-03"] != 3000 {
		t.Errorf("March income = %v, want 3000", series.Income["2024-03"])
	}
	if series.Balance["2024-03"] != 2000 {
		t.Errorf("March balance = %v, want 2000", series.Balance["2024-03"])
	}
	if series.Balance["2024-04"] != 2500 {
		t.Errorf("April balance = %v, want 2500", series.Balance["2024-04"])
	}
	if series.Balance["2024-05"] != -800 {
		t.Errorf("May balance = %v, want -800", series.Balance["2024-05"])
	}
	// An empty month is an explicit zero, not a missing key.
	if income, ok := series.Income["2024-05"]; !ok || income != 0 {
		t.Errorf("May income = (%v, %v), want explicit 0", income, ok)
	}
}

func TestBuildMonthlySeries_SkipsBadRecords(t *testing.T) {
	end := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)

	series := BuildMonthlySeries([]model.Transaction{
		{Description: "no date", Type: model.TypeIncome, Status: model.StatusPaid, Amount: 100},
		{Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Description: "unknown type",
			Type: "transfer", Status: model.StatusPaid, Amount: 100},
		{Date: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), Description: "pending",
			Type: model.TypeIncome, Status: model.StatusPending, Amount: 100},
	}, end, 2)

	for _, month := range series.Months {
		if series.Income[month] != 0 || series.Expense[month] != 0 {
			t.Errorf("month %s accumulated skipped records", month)
		}
	}
}

func TestOrdered(t *testing.T) {
	series := MonthlySeries{
		Months:  []string{"2024-01", "2024-02", "2024-03"},
		Balance: map[string]float64{"2024-01": 10, "2024-02": 20, "2024-03": 30},
	}
	got := series.Ordered(series.Balance)
	want := []float64{10, 20, 30}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Ordered()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestForecast_MovingAverage(t *testing.T) {
	values := []float64{100, 200, 300, 400}
	forecast := Forecast(values, 3, MethodMovingAverage)

	if len(forecast) != 3 {
		t.Fatalf("forecast length = %d, want 3", len(forecast))
	}
	want := (200.0 + 300.0 + 400.0) / 3
	for k, v := range forecast {
		if v != want {
			t.Errorf("forecast[%d] = %v, want constant %v", k, v, want)
		}
	}
}

func TestForecast_MovingAverageShortHistory(t *testing.T) {
	forecast := Forecast([]float64{100, 300}, 2, MethodMovingAverage)
	if len(forecast) != 2 {
		t.Fatalf("forecast length = %d, want 2", len(forecast))
	}
	for k, v := range forecast {
		if v != 200 {
			t.Errorf("forecast[%d] = %v, want 200", k, v)
		}
	}
}

func TestForecast_LinearTrend(t *testing.T) {
	// Delta 50 within the 20% bound of |1050|.
	forecast := Forecast([]float64{1000, 1050}, 3, MethodLinearTrend)
	want := []float64{1100, 1150, 1200}
	for k := range want {
		if math.Abs(forecast[k]-want[k]) > 1e-9 {
			t.Errorf("forecast[%d] = %v, want %v", k, forecast[k], want[k])
		}
	}
}

func TestForecast_LinearTrendClamped(t *testing.T) {
	// Raw delta 900 clamps to 20% of the last value.
	last := 1000.0
	forecast := Forecast([]float64{100, last}, 2, MethodLinearTrend)
	bound := 0.2 * last
	if forecast[0] != last+bound {
		t.Errorf("forecast[0] = %v, want %v", forecast[0], last+bound)
	}
	if forecast[1] != last+2*bound {
		t.Errorf("forecast[1] = %v, want %v", forecast[1], last+2*bound)
	}

	// Downward spikes clamp symmetrically.
	down := Forecast([]float64{1000, 100}, 1, MethodLinearTrend)
	if down[0] != 100-0.2*100 {
		t.Errorf("downward forecast = %v, want %v", down[0], 100-0.2*100)
	}
}

func TestForecast_DefaultRepeatsLast(t *testing.T) {
	forecast := Forecast([]float64{10, 40}, 3, "unknown_method")
	for k, v := range forecast {
		if v != 40 {
			t.Errorf("forecast[%d] = %v, want 40", k, v)
		}
	}
}

func TestForecast_InsufficientHistory(t *testing.T) {
	if got := Forecast([]float64{100}, 3, MethodMovingAverage); got != nil {
		t.Errorf("Forecast with one observation = %v, want nil", got)
	}
	if got := Forecast(nil, 3, MethodLinearTrend); got != nil {
		t.Errorf("Forecast with no observations = %v, want nil", got)
	}
	if got := Forecast([]float64{1, 2}, 0, MethodLinearTrend); got != nil {
		t.Errorf("Forecast with zero horizon = %v, want nil", got)
	}
}

func TestFutureMonths(t *testing.T) {
	keys, err := FutureMonths("2024-11", 3)
	if err != nil {
		t.Fatalf("FutureMonths() unexpected error: %v", err)
	}
	want := []string{"2024-12", "2025-01", "2025-02"}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("FutureMonths()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}

	if _, err := FutureMonths("garbage", 1); err == nil {
		t.Error("FutureMonths(garbage) expected error")
	}
}
