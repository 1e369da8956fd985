// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/crewledger/crewledger/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
// Implementations wrap it with detail; callers match with errors.Is.
var ErrNotFound = errors.New("not found")

// Store defines the interface for trip data storage. This abstraction
// allows swapping storage backends (SQLite, PostgreSQL, etc.) without
// changing the service layer. Implementations must be safe for
// concurrent reads: the settlement service fetches a trip's expenses,
// participants, and settlements in parallel.
type Store interface {
	// CreateTrip persists a new trip. The trip's ID and CreatedAt are
	// populated by the store when unset.
	CreateTrip(ctx context.Context, trip *models.Trip) error

	// GetTrip retrieves a trip by its ID.
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)

	// AddParticipants adds participants to a trip, populating their IDs.
	AddParticipants(ctx context.Context, tripID string, participants []*models.Participant) error

	// ListParticipants retrieves all participants of a trip, ordered by ID.
	ListParticipants(ctx context.Context, tripID string) ([]models.Participant, error)

	// CreateExpense persists an expense together with its splits in one
	// transaction. The expense ID is populated by the store.
	CreateExpense(ctx context.Context, expense *models.Expense, splits []models.ExpenseSplit) error

	// ListExpenses retrieves all expenses of a trip, ordered by date.
	ListExpenses(ctx context.Context, tripID string) ([]models.Expense, error)

	// ListExpenseSplits retrieves the splits of every expense on the
	// trip in one query (the batched form of a per-expense lookup).
	ListExpenseSplits(ctx context.Context, tripID string) ([]models.ExpenseSplit, error)

	// DeleteExpense removes an expense and its splits.
	DeleteExpense(ctx context.Context, expenseID string) error

	// CreateSettlement persists a recorded payment between participants.
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error

	// ListSettlements retrieves all recorded settlements of a trip.
	ListSettlements(ctx context.Context, tripID string) ([]models.Settlement, error)

	// DeleteSettlement removes a recorded settlement by ID.
	DeleteSettlement(ctx context.Context, settlementID string) error

	// Close releases any resources held by the store.
	Close() error
}
