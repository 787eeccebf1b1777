// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/centavohq/centavo/internal/model"
)

// TransactionFilter defines filtering options for transaction queries.
// Zero values mean "no filter" for that field.
type TransactionFilter struct {
	Type       model.TransactionType
	Status     model.TransactionStatus
	Month      time.Month
	Year       int
	PeriodHalf int
	Limit      int
}

// Storage defines the contract for the persistence layer. The ledger core
// never talks to it directly; callers fetch records, run the pure engine,
// and persist the results.
type Storage interface {
	// Transaction operations. SaveTransactions persists a batch in one
	// database transaction and assigns IDs to new records; an installment
	// series is always written through a single call.
	SaveTransactions(ctx context.Context, transactions []model.Transaction) ([]model.Transaction, error)
	GetTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)
	GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error)
	UpdateTransaction(ctx context.Context, txn *model.Transaction) error
	UpdateTransactionStatus(ctx context.Context, id string, status model.TransactionStatus) error
	DeleteTransaction(ctx context.Context, id string) error
	MarkOverdue(ctx context.Context, asOf time.Time) (int, error)

	// Category registry operations.
	GetCategories(ctx context.Context) ([]model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error)
	UpdateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, id int) error
	RecategorizeTransactions(ctx context.Context) (int, error)

	// Goal operations.
	GetGoals(ctx context.Context) ([]model.Goal, error)
	GetGoalByID(ctx context.Context, id int) (*model.Goal, error)
	CreateGoal(ctx context.Context, goal *model.Goal) (*model.Goal, error)
	UpdateGoal(ctx context.Context, goal *model.Goal) error
	DeleteGoal(ctx context.Context, id int) error

	// Database management.
	Migrate(ctx context.Context) error
	Close() error
}
