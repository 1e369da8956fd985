// Package service wires the settlement engine to stored trip data.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"

	"github.com/crewledger/crewledger/internal/models"
	"github.com/crewledger/crewledger/internal/settlement"
	"github.com/crewledger/crewledger/internal/storage"
)

var computeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "crewledger",
	Name:      "settlement_compute_duration_seconds",
	Help:      "Time spent computing a trip settlement summary.",
	Buckets:   prometheus.DefBuckets,
})

// SettlementService computes settlement summaries for trips. Each call is
// an independent, reproducible pipeline over a snapshot of stored data;
// the service holds no mutable state, so computing settlements for
// different trips concurrently is safe.
type SettlementService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewSettlementService creates a SettlementService over the given store.
// The logger is injected rather than taken from the slog default so tests
// and callers control where engine warnings go.
func NewSettlementService(store storage.Store, logger *slog.Logger) *SettlementService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SettlementService{store: store, logger: logger}
}

// ComputeSettlement loads a trip's data and runs the settlement pipeline:
// classify expenses, aggregate balances, apply recorded payments, and
// suggest the minimal payments that settle all debts.
func (s *SettlementService) ComputeSettlement(ctx context.Context, tripID string) (*settlement.Summary, error) {
	defer func(start time.Time) {
		computeDuration.Observe(time.Since(start).Seconds())
	}(time.Now())

	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	// The four reads are independent; fetch them in parallel.
	var (
		participants []models.Participant
		expenses     []models.Expense
		splits       []models.ExpenseSplit
		recorded     []models.Settlement
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		participants, err = s.store.ListParticipants(gctx, tripID)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.store.ListExpenses(gctx, tripID)
		return err
	})
	g.Go(func() error {
		var err error
		splits, err = s.store.ListExpenseSplits(gctx, tripID)
		return err
	})
	g.Go(func() error {
		var err error
		recorded, err = s.store.ListSettlements(gctx, tripID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load trip data: %w", err)
	}

	if recorded == nil {
		recorded = []models.Settlement{}
	}

	summary := &settlement.Summary{
		TripID:              trip.ID,
		Currency:            trip.Currency,
		Balances:            []settlement.ParticipantBalance{},
		Settlements:         []settlement.SuggestedSettlement{},
		UnsplitExpenseIDs:   []string{},
		RecordedSettlements: recorded,
	}

	if len(expenses) == 0 {
		return summary, nil
	}

	for _, exp := range expenses {
		summary.TotalExpenses += exp.Amount
	}

	if len(participants) == 0 {
		// Without participants no balance math is possible; keep the
		// totals for audit and surface every expense as unallocated.
		s.logger.Warn("trip has expenses but no participants; classifying all as unallocated",
			"trip_id", tripID,
			"expense_count", len(expenses),
		)
		summary.UnsplitExpensesTotal = summary.TotalExpenses
		summary.UnsplitExpensesCount = len(expenses)
		for _, exp := range expenses {
			summary.UnsplitExpenseIDs = append(summary.UnsplitExpenseIDs, exp.ID)
		}
		return summary, nil
	}

	splitsByExpense := make(map[string][]models.ExpenseSplit, len(expenses))
	for _, split := range splits {
		splitsByExpense[split.ExpenseID] = append(splitsByExpense[split.ExpenseID], split)
	}

	classified := settlement.Classify(expenses, splitsByExpense)
	summary.SplitExpensesTotal = classified.SplitTotal
	summary.PersonalExpensesTotal = classified.PersonalTotal
	summary.UnsplitExpensesTotal = classified.UnallocatedTotal
	summary.UnsplitExpensesCount = classified.UnallocatedCount()
	if len(classified.UnallocatedIDs) > 0 {
		summary.UnsplitExpenseIDs = classified.UnallocatedIDs
	}

	balances, err := settlement.CalculateBalances(classified.SplitExpenses, splitsByExpense, participants)
	if err != nil {
		return nil, fmt.Errorf("calculate balances for trip %s: %w", tripID, err)
	}

	adjusted := settlement.ApplySettlements(balances, recorded, s.logger)
	summary.Balances = adjusted
	if suggestions := settlement.Optimize(adjusted); len(suggestions) > 0 {
		summary.Settlements = suggestions
	}
	return summary, nil
}
