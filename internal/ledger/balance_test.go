package ledger

import (
	"testing"
	"time"

	"github.com/centavohq/centavo/internal/model"
)

func TestComputeBalance(t *testing.T) {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	record := func(typ model.TransactionType, status model.TransactionStatus, amount float64) model.Transaction {
		return model.Transaction{Date: date, Description: "txn", Type: typ, Status: status, Amount: amount}
	}

	transactions := []model.Transaction{
		record(model.TypeIncome, model.StatusPaid, 3000),
		record(model.TypeExpense, model.StatusPaid, 1200),
		record(model.TypeInvestment, model.StatusPaid, 500),
		// Unsettled records change nothing.
		record(model.TypeExpense, model.StatusPending, 999),
		record(model.TypeIncome, model.StatusOverdue, 999),
	}

	balance := ComputeBalance(transactions)

	if balance.AccountBalance != 1300 {
		t.Errorf("AccountBalance = %v, want 1300", balance.AccountBalance)
	}
	if balance.TotalInvested != 500 {
		t.Errorf("TotalInvested = %v, want 500", balance.TotalInvested)
	}
	if balance.NetWorth != 1800 {
		t.Errorf("NetWorth = %v, want 1800", balance.NetWorth)
	}
}

func TestComputeBalance_InvestmentPreservesNetWorth(t *testing.T) {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	base := []model.Transaction{
		{Date: date, Description: "salary", Type: model.TypeIncome, Status: model.StatusPaid, Amount: 2000},
	}
	before := ComputeBalance(base)

	// Moving money into investments shifts it between components without
	// changing net worth.
	after := ComputeBalance(append(base, model.Transaction{
		Date: date, Description: "buy fund", Type: model.TypeInvestment, Status: model.StatusPaid, Amount: 700,
	}))

	if after.NetWorth != before.NetWorth {
		t.Errorf("NetWorth changed from %v to %v on investment", before.NetWorth, after.NetWorth)
	}
	if after.AccountBalance != before.AccountBalance-700 {
		t.Errorf("AccountBalance = %v, want %v", after.AccountBalance, before.AccountBalance-700)
	}
	if after.TotalInvested != 700 {
		t.Errorf("TotalInvested = %v, want 700", after.TotalInvested)
	}
}

func TestComputeBalance_Empty(t *testing.T) {
	balance := ComputeBalance(nil)
	if balance.AccountBalance != 0 || balance.TotalInvested != 0 || balance.NetWorth != 0 {
		t.Errorf("empty ledger balance = %+v, want zeros", balance)
	}
}
