package model

import (
	"errors"
	"math"
	"testing"
	"time"
)

func validTransaction() Transaction {
	return Transaction{
		Date:             time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		Description:      "Groceries",
		Category:         "Groceries",
		Type:             TypeExpense,
		Status:           StatusPending,
		Amount:           120.50,
		Priority:         PriorityMedium,
		Installments:     1,
		InstallmentIndex: 1,
	}
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		mutate  func(*Transaction)
		name    string
		wantErr bool
	}{
		{name: "valid transaction", mutate: func(_ *Transaction) {}},
		{name: "missing description", mutate: func(txn *Transaction) { txn.Description = "" }, wantErr: true},
		{name: "negative amount", mutate: func(txn *Transaction) { txn.Amount = -5 }, wantErr: true},
		{name: "zero amount is fine", mutate: func(txn *Transaction) { txn.Amount = 0 }},
		{name: "NaN amount", mutate: func(txn *Transaction) { txn.Amount = math.NaN() }, wantErr: true},
		{name: "infinite amount", mutate: func(txn *Transaction) { txn.Amount = math.Inf(1) }, wantErr: true},
		{name: "missing date", mutate: func(txn *Transaction) { txn.Date = time.Time{} }, wantErr: true},
		{name: "zero installments", mutate: func(txn *Transaction) { txn.Installments = 0 }, wantErr: true},
		{name: "index past total", mutate: func(txn *Transaction) {
			txn.Installments = 3
			txn.InstallmentIndex = 4
		}, wantErr: true},
		{name: "index within series", mutate: func(txn *Transaction) {
			txn.Installments = 3
			txn.InstallmentIndex = 2
		}},
		{name: "zero index", mutate: func(txn *Transaction) { txn.InstallmentIndex = 0 }, wantErr: true},
		{name: "priority too high", mutate: func(txn *Transaction) { txn.Priority = 4 }, wantErr: true},
		{name: "priority too low", mutate: func(txn *Transaction) { txn.Priority = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := validTransaction()
			tt.mutate(&txn)
			err := txn.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidTransaction) {
					t.Errorf("Validate() error = %v, want ErrInvalidTransaction", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestTransaction_EffectiveDueDate(t *testing.T) {
	txn := validTransaction()

	if !txn.EffectiveDueDate().Equal(txn.Date) {
		t.Errorf("EffectiveDueDate() = %v, want posting date %v", txn.EffectiveDueDate(), txn.Date)
	}

	due := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	txn.DueDate = due
	if !txn.EffectiveDueDate().Equal(due) {
		t.Errorf("EffectiveDueDate() = %v, want %v", txn.EffectiveDueDate(), due)
	}
}

func TestCategory_Validate(t *testing.T) {
	valid := Category{Name: "Groceries", Type: TypeExpense, BudgetClass: BudgetNecessity}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}

	missing := Category{Type: TypeExpense, BudgetClass: BudgetNecessity}
	if err := missing.Validate(); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("Validate() error = %v, want ErrInvalidCategory", err)
	}

	badType := Category{Name: "X", Type: "transfer", BudgetClass: BudgetOther}
	if err := badType.Validate(); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("Validate() error = %v, want ErrInvalidCategory", err)
	}

	badClass := Category{Name: "X", Type: TypeExpense, BudgetClass: "luxury"}
	if err := badClass.Validate(); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("Validate() error = %v, want ErrInvalidCategory", err)
	}
}
