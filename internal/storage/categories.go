package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/centavohq/centavo/internal/common"
	"github.com/centavohq/centavo/internal/ledger"
	"github.com/centavohq/centavo/internal/model"
)

// GetCategories returns all active categories ordered by name.
func (s *SQLiteStorage) GetCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, type, budget_class, is_active, created_at
		FROM categories
		WHERE is_active = 1
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		var catType, budgetClass string
		if err := rows.Scan(&cat.ID, &cat.Name, &catType, &budgetClass, &cat.IsActive, &cat.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		cat.Type = model.TransactionType(catType)
		cat.BudgetClass = model.BudgetClass(budgetClass)
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}

// GetCategoryByName returns an active category by its name.
func (s *SQLiteStorage) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	var cat model.Category
	var catType, budgetClass string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, type, budget_class, is_active, created_at
		FROM categories
		WHERE name = ? COLLATE NOCASE AND is_active = 1`, name).Scan(
		&cat.ID, &cat.Name, &catType, &budgetClass, &cat.IsActive, &cat.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	cat.Type = model.TransactionType(catType)
	cat.BudgetClass = model.BudgetClass(budgetClass)
	return &cat, nil
}

// CreateCategory creates a new category, reactivating a soft-deleted one
// with the same name instead of violating the unique constraint.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}

	var existing model.Category
	var isActive bool
	err := s.db.QueryRowContext(ctx,
		`SELECT id, is_active FROM categories WHERE name = ?`, category.Name).Scan(
		&existing.ID, &isActive)
	switch {
	case err == nil:
		if isActive {
			return nil, fmt.Errorf("%w: category %q", common.ErrDuplicateEntry, category.Name)
		}
		_, err = s.db.ExecContext(ctx, `
			UPDATE categories SET type = ?, budget_class = ?, is_active = 1 WHERE id = ?`,
			string(category.Type), string(category.BudgetClass), existing.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to reactivate category: %w", err)
		}
		category.ID = existing.ID
		category.IsActive = true
		slog.Info("reactivated existing category", "name", category.Name)
		return category, nil
	case err != sql.ErrNoRows:
		return nil, fmt.Errorf("failed to check existing category: %w", err)
	}

	now := time.Now()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (name, type, budget_class, is_active, created_at)
		VALUES (?, ?, ?, 1, ?)`,
		category.Name, string(category.Type), string(category.BudgetClass), now)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read created category id: %w", err)
	}

	category.ID = int(id)
	category.IsActive = true
	category.CreatedAt = now
	return category, nil
}

// UpdateCategory rewrites a category's name, type and budget class.
func (s *SQLiteStorage) UpdateCategory(ctx context.Context, category *model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCategory(category); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE categories SET name = ?, type = ?, budget_class = ? WHERE id = ?`,
		category.Name, string(category.Type), string(category.BudgetClass), category.ID)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

// DeleteCategory soft-deletes a category. Transactions referencing it keep
// their cached budget class until recategorized.
func (s *SQLiteStorage) DeleteCategory(ctx context.Context, id int) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE categories SET is_active = 0 WHERE id = ? AND is_active = 1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

// RecategorizeTransactions recomputes every transaction's cached budget
// class from the current registry and returns how many records changed.
func (s *SQLiteStorage) RecategorizeTransactions(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	categories, err := s.GetCategories(ctx)
	if err != nil {
		return 0, err
	}
	registry := ledger.NewRegistry(categories)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(ctx, `SELECT id, category, type, budget_class FROM transactions`)
	if err != nil {
		return 0, fmt.Errorf("failed to query transactions: %w", err)
	}

	type change struct {
		id    int64
		class model.BudgetClass
	}
	var changes []change
	for rows.Next() {
		var id int64
		var category, txnType, current string
		if err := rows.Scan(&id, &category, &txnType, &current); err != nil {
			_ = rows.Close()
			return 0, fmt.Errorf("failed to scan transaction: %w", err)
		}
		probe := model.Transaction{Category: category, Type: model.TransactionType(txnType)}
		next := registry.ApplyBudgetClass(probe).BudgetClass
		if string(next) != current {
			changes = append(changes, change{id: id, class: next})
		}
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return 0, fmt.Errorf("error iterating transactions: %w", err)
	}
	_ = rows.Close()

	for _, c := range changes {
		if _, err := tx.ExecContext(ctx,
			`UPDATE transactions SET budget_class = ? WHERE id = ?`, string(c.class), c.id); err != nil {
			return 0, fmt.Errorf("failed to recategorize transaction %d: %w", c.id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit recategorization: %w", err)
	}

	if len(changes) > 0 {
		slog.Info("recategorized transactions", "count", len(changes))
	}
	return len(changes), nil
}
