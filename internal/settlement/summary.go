package settlement

import "github.com/crewledger/crewledger/internal/models"

// Summary is the full settlement picture for one trip: adjusted balances,
// suggested payments, classification totals, and the recorded settlements
// the computation used. It is ephemeral, never persisted, and all amounts
// are minor units of Currency.
type Summary struct {
	TripID   string `json:"tripId"`
	Currency string `json:"currency"`

	Balances    []ParticipantBalance  `json:"balances"`
	Settlements []SuggestedSettlement `json:"settlements"`

	// TotalExpenses sums every expense on the trip, regardless of
	// classification.
	TotalExpenses int64 `json:"totalExpenses"`

	SplitExpensesTotal    int64 `json:"splitExpensesTotal"`
	PersonalExpensesTotal int64 `json:"personalExpensesTotal"`

	// Unsplit expenses have no splits recorded yet and are excluded from
	// balance math; their IDs are surfaced so callers can prompt for
	// allocation.
	UnsplitExpensesTotal int64    `json:"unsplitExpensesTotal"`
	UnsplitExpensesCount int      `json:"unsplitExpensesCount"`
	UnsplitExpenseIDs    []string `json:"unsplitExpenseIds"`

	RecordedSettlements []models.Settlement `json:"recordedSettlements"`
}
