package ledger

import "github.com/centavohq/centavo/internal/model"

// Balance is the cumulative financial position derived from every paid
// transaction since inception.
type Balance struct {
	AccountBalance float64
	TotalInvested  float64
	NetWorth       float64
}

// ComputeBalance folds the full transaction set into the current position.
// Income adds to the account; expenses subtract; investments subtract from
// the account once and accumulate as invested capital, so the same amount
// appears in both sides of the net-worth identity. Pending and overdue
// records are ignored, as are records with unrecognized types.
func ComputeBalance(transactions []model.Transaction) Balance {
	var b Balance
	for _, t := range transactions {
		if t.Status != model.StatusPaid {
			continue
		}
		switch t.Type {
		case model.TypeIncome:
			b.AccountBalance += t.Amount
		case model.TypeExpense:
			b.AccountBalance -= t.Amount
		case model.TypeInvestment:
			b.AccountBalance -= t.Amount
			b.TotalInvested += t.Amount
		}
	}
	b.NetWorth = b.AccountBalance + b.TotalInvested
	return b
}
