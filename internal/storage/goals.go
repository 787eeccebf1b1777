package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/centavohq/centavo/internal/common"
	"github.com/centavohq/centavo/internal/model"
)

const goalColumns = `id, title, description, target_amount, current_amount,
	deadline, category, status, created_at, updated_at`

// GetGoals returns all goals, newest first.
func (s *SQLiteStorage) GetGoals(ctx context.Context) ([]model.Goal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+goalColumns+` FROM goals ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var goals []model.Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, *goal)
	}
	return goals, rows.Err()
}

// GetGoalByID retrieves a single goal.
func (s *SQLiteStorage) GetGoalByID(ctx context.Context, id int) (*model.Goal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = ?`, id)
	goal, err := scanGoal(row)
	if err == sql.ErrNoRows {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return goal, nil
}

// CreateGoal persists a new goal and assigns its ID.
func (s *SQLiteStorage) CreateGoal(ctx context.Context, goal *model.Goal) (*model.Goal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateGoal(goal); err != nil {
		return nil, err
	}

	if goal.Status == "" {
		goal.Status = model.GoalActive
	}
	now := time.Now()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO goals (title, description, target_amount, current_amount,
			deadline, category, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		goal.Title, goal.Description, goal.TargetAmount, goal.CurrentAmount,
		nullableTime(goal.Deadline), goal.Category, string(goal.Status), now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read created goal id: %w", err)
	}

	goal.ID = int(id)
	goal.CreatedAt = now
	goal.UpdatedAt = now
	return goal, nil
}

// UpdateGoal rewrites a goal's mutable fields.
func (s *SQLiteStorage) UpdateGoal(ctx context.Context, goal *model.Goal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateGoal(goal); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE goals
		SET title = ?, description = ?, target_amount = ?, current_amount = ?,
			deadline = ?, category = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		goal.Title, goal.Description, goal.TargetAmount, goal.CurrentAmount,
		nullableTime(goal.Deadline), goal.Category, string(goal.Status), time.Now(), goal.ID)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
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

// DeleteGoal removes a goal.
func (s *SQLiteStorage) DeleteGoal(ctx context.Context, id int) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
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

func scanGoal(row scanner) (*model.Goal, error) {
	var goal model.Goal
	var deadline sql.NullTime
	var status string

	err := row.Scan(
		&goal.ID,
		&goal.Title,
		&goal.Description,
		&goal.TargetAmount,
		&goal.CurrentAmount,
		&deadline,
		&goal.Category,
		&status,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if deadline.Valid {
		goal.Deadline = deadline.Time
	}
	goal.Status = model.GoalStatus(status)
	return &goal, nil
}

func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
