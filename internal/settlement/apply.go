package settlement

import (
	"log/slog"
	"sort"

	"github.com/crewledger/crewledger/internal/models"
)

// ApplySettlements adjusts balances for payments already made between
// participants. Each recorded settlement is a zero-sum transfer: the
// payer's paid total and net position rise by the amount, the payee's
// owed total rises and net position falls by the same amount, so the
// conservation invariant is untouched.
//
// A settlement referencing a participant absent from balances is skipped
// with a warning rather than failing: participants can be removed after a
// payment was recorded, and that drift must not block settling the rest
// of the trip. The input slice is never mutated.
func ApplySettlements(balances []ParticipantBalance, settlements []models.Settlement, logger *slog.Logger) []ParticipantBalance {
	if logger == nil {
		logger = slog.Default()
	}

	adjusted := make([]ParticipantBalance, len(balances))
	copy(adjusted, balances)

	index := make(map[string]int, len(adjusted))
	for i, b := range adjusted {
		index[b.ParticipantID] = i
	}

	for _, s := range settlements {
		from, okFrom := index[s.FromParticipantID]
		to, okTo := index[s.ToParticipantID]
		if !okFrom || !okTo {
			logger.Warn("skipping settlement referencing unknown participant",
				"settlement_id", s.ID,
				"from", s.FromParticipantID,
				"to", s.ToParticipantID,
			)
			continue
		}

		adjusted[from].TotalPaid += s.Amount
		adjusted[from].NetPosition += s.Amount
		adjusted[to].TotalOwed += s.Amount
		adjusted[to].NetPosition -= s.Amount
	}

	sort.Slice(adjusted, func(a, b int) bool {
		return adjusted[a].ParticipantID < adjusted[b].ParticipantID
	})
	return adjusted
}
