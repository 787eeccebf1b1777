package ledger

import (
	"testing"

	"github.com/centavohq/centavo/internal/model"
)

func testCategories() []model.Category {
	return []model.Category{
		{ID: 1, Name: "Groceries", Type: model.TypeExpense, BudgetClass: model.BudgetNecessity, IsActive: true},
		{ID: 2, Name: "Restaurants", Type: model.TypeExpense, BudgetClass: model.BudgetWant, IsActive: true},
		{ID: 3, Name: "Emergency Fund", Type: model.TypeExpense, BudgetClass: model.BudgetSavings, IsActive: true},
		{ID: 4, Name: "Old Hobby", Type: model.TypeExpense, BudgetClass: model.BudgetWant, IsActive: false},
	}
}

func TestRegistry_Classify(t *testing.T) {
	registry := NewRegistry(testCategories())

	tests := []struct {
		name     string
		category string
		want     model.BudgetClass
	}{
		{name: "exact match", category: "Groceries", want: model.BudgetNecessity},
		{name: "case insensitive", category: "groceries", want: model.BudgetNecessity},
		{name: "upper case", category: "RESTAURANTS", want: model.BudgetWant},
		{name: "savings category", category: "Emergency Fund", want: model.BudgetSavings},
		{name: "unknown falls back to other", category: "Skydiving", want: model.BudgetOther},
		{name: "empty falls back to other", category: "", want: model.BudgetOther},
		{name: "inactive category no longer classifies", category: "Old Hobby", want: model.BudgetOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := registry.Classify(tt.category); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.category, got, tt.want)
			}
		})
	}
}

func TestRegistry_ApplyBudgetClass(t *testing.T) {
	registry := NewRegistry(testCategories())

	expense := model.Transaction{Type: model.TypeExpense, Category: "Restaurants"}
	if got := registry.ApplyBudgetClass(expense); got.BudgetClass != model.BudgetWant {
		t.Errorf("expense budget class = %q, want %q", got.BudgetClass, model.BudgetWant)
	}

	// Investments land in savings no matter what their category says.
	investment := model.Transaction{Type: model.TypeInvestment, Category: "Restaurants"}
	if got := registry.ApplyBudgetClass(investment); got.BudgetClass != model.BudgetSavings {
		t.Errorf("investment budget class = %q, want %q", got.BudgetClass, model.BudgetSavings)
	}

	unknown := model.Transaction{Type: model.TypeExpense, Category: "Mystery"}
	if got := registry.ApplyBudgetClass(unknown); got.BudgetClass != model.BudgetOther {
		t.Errorf("unknown budget class = %q, want %q", got.BudgetClass, model.BudgetOther)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	registry := NewRegistry(testCategories())

	if cat, ok := registry.Lookup("groceries"); !ok || cat.ID != 1 {
		t.Errorf("Lookup(groceries) = (%+v, %v), want ID 1", cat, ok)
	}
	if _, ok := registry.Lookup("Old Hobby"); ok {
		t.Error("Lookup(Old Hobby) found an inactive category")
	}
}
