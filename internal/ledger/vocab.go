// Package ledger implements the budget classification engine: vocabulary
// normalization, installment expansion, 50/30/20 aggregation, balance and
// net-worth calculation, and monthly trend building. Every operation is a
// pure function over a transaction collection supplied by the caller; the
// package holds no state between calls.
package ledger

import (
	"fmt"
	"strings"

	"github.com/centavohq/centavo/internal/common"
	"github.com/centavohq/centavo/internal/model"
)

// The ledger accumulated several spellings for the same vocabulary across
// schema revisions, in both Portuguese and English. These tables map every
// known token to its canonical value. Matching is case-insensitive and
// idempotent: canonical values map to themselves.
var typeSynonyms = map[string]model.TransactionType{
	"income":       model.TypeIncome,
	"receita":      model.TypeIncome,
	"receitas":     model.TypeIncome,
	"revenue":      model.TypeIncome,
	"earnings":     model.TypeIncome,
	"inc":          model.TypeIncome,
	"expense":      model.TypeExpense,
	"expenses":     model.TypeExpense,
	"despesa":      model.TypeExpense,
	"despesas":     model.TypeExpense,
	"gasto":        model.TypeExpense,
	"gastos":       model.TypeExpense,
	"exp":          model.TypeExpense,
	"investment":   model.TypeInvestment,
	"investments":  model.TypeInvestment,
	"investimento": model.TypeInvestment,
	"invest":       model.TypeInvestment,
	"inv":          model.TypeInvestment,
}

var statusSynonyms = map[string]model.TransactionStatus{
	"paid":     model.StatusPaid,
	"pago":     model.StatusPaid,
	"paga":     model.StatusPaid,
	"settled":  model.StatusPaid,
	"pending":  model.StatusPending,
	"pendente": model.StatusPending,
	"open":     model.StatusPending,
	"unpaid":   model.StatusPending,
	"overdue":  model.StatusOverdue,
	"atrasado": model.StatusOverdue,
	"atrasada": model.StatusOverdue,
	"vencido":  model.StatusOverdue,
	"vencida":  model.StatusOverdue,
	"late":     model.StatusOverdue,
}

var budgetClassSynonyms = map[string]model.BudgetClass{
	"necessity":    model.BudgetNecessity,
	"necessities":  model.BudgetNecessity,
	"necessidade":  model.BudgetNecessity,
	"necessidades": model.BudgetNecessity,
	"need":         model.BudgetNecessity,
	"needs":        model.BudgetNecessity,
	"want":         model.BudgetWant,
	"wants":        model.BudgetWant,
	"desejo":       model.BudgetWant,
	"desejos":      model.BudgetWant,
	"savings":      model.BudgetSavings,
	"saving":       model.BudgetSavings,
	"poupanca":     model.BudgetSavings,
	"poupança":     model.BudgetSavings,
	"investimento": model.BudgetSavings,
	"other":        model.BudgetOther,
	"others":       model.BudgetOther,
	"outro":        model.BudgetOther,
	"outros":       model.BudgetOther,
}

// NormalizeType maps a raw type string to its canonical value. Unrecognized
// input is an error: callers must exclude the record from typed aggregates
// rather than guess a type.
func NormalizeType(raw string) (model.TransactionType, error) {
	token := strings.ToLower(strings.TrimSpace(raw))
	if token == "" {
		return "", fmt.Errorf("%w: empty transaction type", common.ErrUnknownVocabulary)
	}
	if t, ok := typeSynonyms[token]; ok {
		return t, nil
	}
	return "", fmt.Errorf("%w: transaction type %q", common.ErrUnknownVocabulary, raw)
}

// NormalizeStatus maps a raw status string to its canonical value. An absent
// status defaults to pending; an unrecognized one is an error.
func NormalizeStatus(raw string) (model.TransactionStatus, error) {
	token := strings.ToLower(strings.TrimSpace(raw))
	if token == "" {
		return model.StatusPending, nil
	}
	if s, ok := statusSynonyms[token]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: transaction status %q", common.ErrUnknownVocabulary, raw)
}

// NormalizeBudgetClass maps a raw budget class string to its canonical
// value. Unknown or empty input falls back to Other; the budget class is a
// derived cache, so a bad token degrades instead of failing the record.
func NormalizeBudgetClass(raw string) model.BudgetClass {
	token := strings.ToLower(strings.TrimSpace(raw))
	if c, ok := budgetClassSynonyms[token]; ok {
		return c
	}
	return model.BudgetOther
}

// NormalizeTransaction returns a copy of t with canonical vocabulary and
// derived fields populated: type and status normalized, due date defaulted
// to the posting date, period half recomputed, priority and installment
// fields defaulted. The input is never mutated.
func NormalizeTransaction(t model.Transaction) (model.Transaction, error) {
	typ, err := NormalizeType(string(t.Type))
	if err != nil {
		return model.Transaction{}, err
	}
	status, err := NormalizeStatus(string(t.Status))
	if err != nil {
		return model.Transaction{}, err
	}

	t.Type = typ
	t.Status = status
	t.BudgetClass = NormalizeBudgetClass(string(t.BudgetClass))
	if t.DueDate.IsZero() {
		t.DueDate = t.Date
	}
	if !t.Date.IsZero() {
		t.PeriodHalf = PeriodOf(t.Date)
	}
	if t.Priority == 0 {
		t.Priority = model.PriorityMedium
	}
	if t.Installments == 0 {
		t.Installments = 1
	}
	if t.InstallmentIndex == 0 {
		t.InstallmentIndex = 1
	}
	return t, nil
}
