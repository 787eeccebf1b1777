package ledger

import (
	"strings"

	"github.com/centavohq/centavo/internal/model"
)

// Registry is a read-only lookup of active categories, keyed by name.
// Lookup is case-insensitive; whitespace is not normalized.
type Registry struct {
	byName map[string]model.Category
}

// NewRegistry builds a registry from a category collection. Inactive
// categories are skipped so that soft-deleted entries stop classifying.
func NewRegistry(categories []model.Category) *Registry {
	byName := make(map[string]model.Category, len(categories))
	for _, cat := range categories {
		if !cat.IsActive {
			continue
		}
		byName[strings.ToLower(cat.Name)] = cat
	}
	return &Registry{byName: byName}
}

// Lookup returns the active category with the given name.
func (r *Registry) Lookup(name string) (model.Category, bool) {
	cat, ok := r.byName[strings.ToLower(name)]
	return cat, ok
}

// Classify maps a category name to its budget class. Unknown names fall
// back to Other; that single fallback applies to every call site.
func (r *Registry) Classify(name string) model.BudgetClass {
	if cat, ok := r.Lookup(name); ok {
		return cat.BudgetClass
	}
	return model.BudgetOther
}

// ApplyBudgetClass returns a copy of the transaction with its budget class
// recomputed from the registry. Investments always land in the savings
// bucket regardless of category.
func (r *Registry) ApplyBudgetClass(t model.Transaction) model.Transaction {
	if t.Type == model.TypeInvestment {
		t.BudgetClass = model.BudgetSavings
		return t
	}
	t.BudgetClass = r.Classify(t.Category)
	return t
}
