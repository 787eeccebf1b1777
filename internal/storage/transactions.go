package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/centavohq/centavo/internal/common"
	"github.com/centavohq/centavo/internal/ledger"
	"github.com/centavohq/centavo/internal/model"
	"github.com/centavohq/centavo/internal/service"
)

const transactionColumns = `id, description, amount, category, date, due_date,
	type, status, budget_class, recurring, priority, period_half,
	installments, installment_index, fixed_expense`

// SaveTransactions persists a batch of transactions in a single database
// transaction. Records without an ID are inserted and receive one; records
// with an ID are updated in place. The returned slice carries the assigned
// IDs in input order. An installment series must always pass through one
// call so the whole batch commits or none of it does.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, transactions []model.Transaction) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateTransactions(transactions); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	saved := make([]model.Transaction, len(transactions))
	for i, txn := range transactions {
		if txn.ID == "" {
			result, execErr := tx.ExecContext(ctx, `
				INSERT INTO transactions (description, amount, category, date, due_date,
					type, status, budget_class, recurring, priority, period_half,
					installments, installment_index, fixed_expense)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				txn.Description, txn.Amount, txn.Category, txn.Date, txn.EffectiveDueDate(),
				string(txn.Type), string(txn.Status), string(txn.BudgetClass),
				txn.Recurring, txn.Priority, txn.PeriodHalf,
				txn.Installments, txn.InstallmentIndex, txn.FixedExpense)
			if execErr != nil {
				return nil, fmt.Errorf("failed to insert transaction %q: %w", txn.Description, execErr)
			}
			id, idErr := result.LastInsertId()
			if idErr != nil {
				return nil, fmt.Errorf("failed to read inserted id: %w", idErr)
			}
			txn.ID = strconv.FormatInt(id, 10)
		} else {
			if execErr := updateTransactionTx(ctx, tx, &txn); execErr != nil {
				return nil, execErr
			}
		}
		saved[i] = txn
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit batch: %w", err)
	}

	slog.Debug("saved transactions", "count", len(saved))
	return saved, nil
}

// GetTransactions retrieves transactions matching the filter, newest first.
func (s *SQLiteStorage) GetTransactions(ctx context.Context, filter service.TransactionFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	args := []any{}

	if filter.Type != "" {
		query += " AND type = ?"
		args = append(args, string(filter.Type))
	}
	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, string(filter.Status))
	}
	if filter.Year != 0 {
		query += " AND strftime('%Y', date) = ?"
		args = append(args, fmt.Sprintf("%04d", filter.Year))
	}
	if filter.Month != 0 {
		query += " AND strftime('%m', date) = ?"
		args = append(args, fmt.Sprintf("%02d", int(filter.Month)))
	}
	if filter.PeriodHalf != 0 {
		query += " AND period_half = ?"
		args = append(args, filter.PeriodHalf)
	}

	query += " ORDER BY date DESC, id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTransactions(rows)
}

// GetTransactionByID retrieves a single transaction by ID.
func (s *SQLiteStorage) GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = ?`, id)

	txn, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

// UpdateTransaction rewrites every mutable field of a stored transaction,
// recomputing the cached period half and budget class so edits to the date,
// category or type never leave stale derived values behind.
func (s *SQLiteStorage) UpdateTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if err := validateString(txn.ID, "id"); err != nil {
		return err
	}
	if err := txn.Validate(); err != nil {
		return err
	}

	// Derived caches follow the edit: the period half tracks the date and
	// the budget class tracks the category and type.
	txn.PeriodHalf = ledger.PeriodOf(txn.Date)
	categories, err := s.GetCategories(ctx)
	if err != nil {
		return err
	}
	*txn = ledger.NewRegistry(categories).ApplyBudgetClass(*txn)

	return updateTransactionTx(ctx, s.db, txn)
}

func updateTransactionTx(ctx context.Context, q queryable, txn *model.Transaction) error {
	result, err := q.ExecContext(ctx, `
		UPDATE transactions
		SET description = ?, amount = ?, category = ?, date = ?, due_date = ?,
			type = ?, status = ?, budget_class = ?, recurring = ?, priority = ?,
			period_half = ?, installments = ?, installment_index = ?, fixed_expense = ?
		WHERE id = ?`,
		txn.Description, txn.Amount, txn.Category, txn.Date, txn.EffectiveDueDate(),
		string(txn.Type), string(txn.Status), string(txn.BudgetClass),
		txn.Recurring, txn.Priority, txn.PeriodHalf,
		txn.Installments, txn.InstallmentIndex, txn.FixedExpense, txn.ID)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.ID, err)
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

// UpdateTransactionStatus transitions a single transaction's status.
func (s *SQLiteStorage) UpdateTransactionStatus(ctx context.Context, id string, status model.TransactionStatus) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE transactions SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
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

// DeleteTransaction removes a single record. Sibling installments are left
// untouched; deletion never cascades across a series.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
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

// MarkOverdue transitions pending expenses whose due date has passed to
// overdue and returns how many records changed.
func (s *SQLiteStorage) MarkOverdue(ctx context.Context, asOf time.Time) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE transactions
		SET status = ?
		WHERE status = ? AND type = ? AND due_date < ?`,
		string(model.StatusOverdue), string(model.StatusPending),
		string(model.TypeExpense), asOf)
	if err != nil {
		return 0, fmt.Errorf("failed to mark overdue transactions: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count overdue transactions: %w", err)
	}

	if affected > 0 {
		slog.Info("marked transactions overdue", "count", affected, "as_of", asOf.Format("2006-01-02"))
	}
	return int(affected), nil
}

// scanner abstracts *sql.Row and *sql.Rows for single-record scans.
type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (*model.Transaction, error) {
	var txn model.Transaction
	var id int64
	var txnType, status, budgetClass string

	err := row.Scan(
		&id,
		&txn.Description,
		&txn.Amount,
		&txn.Category,
		&txn.Date,
		&txn.DueDate,
		&txnType,
		&status,
		&budgetClass,
		&txn.Recurring,
		&txn.Priority,
		&txn.PeriodHalf,
		&txn.Installments,
		&txn.InstallmentIndex,
		&txn.FixedExpense,
	)
	if err != nil {
		return nil, err
	}

	txn.ID = strconv.FormatInt(id, 10)
	txn.Type = model.TransactionType(txnType)
	txn.Status = model.TransactionStatus(status)
	txn.BudgetClass = model.BudgetClass(budgetClass)
	return &txn, nil
}

func scanTransactions(rows *sql.Rows) ([]model.Transaction, error) {
	var transactions []model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, *txn)
	}
	return transactions, rows.Err()
}
