package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/crewledger/crewledger/internal/models"
	"github.com/crewledger/crewledger/internal/storage"
)

// CreateExpense persists an expense and its splits in one transaction.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense, splits []models.ExpenseSplit) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.Date == 0 {
		expense.Date = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO expenses (id, trip_id, description, amount, paid_by, date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.TripID, expense.Description, expense.Amount, expense.PaidBy, expense.Date,
	); err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for _, split := range splits {
		var amount interface{}
		if split.Amount != nil {
			amount = *split.Amount
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO expense_splits (expense_id, participant_id, share_type, share, amount)
			 VALUES (?, ?, ?, ?, ?)`,
			expense.ID, split.ParticipantID, string(split.ShareType), split.Share, amount,
		); err != nil {
			return fmt.Errorf("failed to insert expense split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit expense: %w", err)
	}
	return nil
}

// ListExpenses retrieves all expenses of a trip ordered by date.
func (s *SQLiteStore) ListExpenses(ctx context.Context, tripID string) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, trip_id, description, amount, paid_by, date
		 FROM expenses WHERE trip_id = ? ORDER BY date, id`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.TripID, &e.Description, &e.Amount, &e.PaidBy, &e.Date); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}

// ListExpenseSplits retrieves the splits of every expense on the trip.
func (s *SQLiteStore) ListExpenseSplits(ctx context.Context, tripID string) ([]models.ExpenseSplit, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT es.expense_id, es.participant_id, es.share_type, es.share, es.amount
		 FROM expense_splits es
		 JOIN expenses e ON e.id = es.expense_id
		 WHERE e.trip_id = ?
		 ORDER BY es.expense_id, es.participant_id`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense splits: %w", err)
	}
	defer rows.Close()

	var splits []models.ExpenseSplit
	for rows.Next() {
		var (
			split     models.ExpenseSplit
			shareType string
			amount    sql.NullInt64
		)
		if err := rows.Scan(&split.ExpenseID, &split.ParticipantID, &shareType, &split.Share, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan expense split: %w", err)
		}
		split.ShareType = models.ShareType(shareType)
		if amount.Valid {
			split.Amount = &amount.Int64
		}
		splits = append(splits, split)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense splits: %w", err)
	}
	return splits, nil
}

// DeleteExpense removes an expense; its splits go with it via cascade.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM expenses WHERE id = ?", expenseID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check expense existence: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
