package settlement

import (
	"fmt"
	"sort"

	"github.com/crewledger/crewledger/internal/models"
)

// ParticipantBalance is one participant's computed net position for a
// trip. Positive NetPosition means the participant is owed money,
// negative means they owe money.
type ParticipantBalance struct {
	ParticipantID   string `json:"participantId"`
	ParticipantName string `json:"participantName"`

	// TotalPaid is everything this participant paid out, in minor units.
	TotalPaid int64 `json:"totalPaid"`

	// TotalOwed is everything this participant's shares add up to.
	TotalOwed int64 `json:"totalOwed"`

	// NetPosition is TotalPaid - TotalOwed. Across all participants the
	// net positions always sum to zero.
	NetPosition int64 `json:"netPosition"`
}

// CalculateBalances aggregates split expenses into per-participant net
// positions. Every participant appears in the output even with no
// activity; output is sorted ascending by participant ID.
//
// Referential integrity is validated first: every split's participant and
// every expense's payer must exist in participants. All violations are
// collected into one *InvalidParticipantsError rather than failing on the
// first, so a single pass surfaces every offending ID.
func CalculateBalances(expenses []models.Expense, splitsByExpense map[string][]models.ExpenseSplit, participants []models.Participant) ([]ParticipantBalance, error) {
	known := make(map[string]string, len(participants))
	for _, p := range participants {
		known[p.ID] = p.Name
	}

	if err := validateReferences(expenses, splitsByExpense, known); err != nil {
		return nil, err
	}

	byID := make(map[string]*ParticipantBalance, len(participants))
	for _, p := range participants {
		byID[p.ID] = &ParticipantBalance{ParticipantID: p.ID, ParticipantName: p.Name}
	}

	for _, exp := range expenses {
		splits := splitsByExpense[exp.ID]
		if len(splits) == 0 {
			// Unallocated expenses never reach this point; crediting the
			// payer without matching shares would break conservation.
			continue
		}

		byID[exp.PaidBy].TotalPaid += exp.Amount

		shares, err := NormalizeShares(splits, exp.Amount)
		if err != nil {
			return nil, fmt.Errorf("normalize shares for expense %s: %w", exp.ID, err)
		}
		for i, split := range splits {
			byID[split.ParticipantID].TotalOwed += shares[i]
		}
	}

	balances := make([]ParticipantBalance, 0, len(byID))
	for _, b := range byID {
		b.NetPosition = b.TotalPaid - b.TotalOwed
		balances = append(balances, *b)
	}
	sort.Slice(balances, func(a, b int) bool {
		return balances[a].ParticipantID < balances[b].ParticipantID
	})
	return balances, nil
}

func validateReferences(expenses []models.Expense, splitsByExpense map[string][]models.ExpenseSplit, known map[string]string) error {
	seen := make(map[string]bool)
	var invalid []string
	record := func(id string) {
		if _, ok := known[id]; !ok && !seen[id] {
			seen[id] = true
			invalid = append(invalid, id)
		}
	}

	for _, exp := range expenses {
		record(exp.PaidBy)
		for _, split := range splitsByExpense[exp.ID] {
			record(split.ParticipantID)
		}
	}

	if len(invalid) > 0 {
		sort.Strings(invalid)
		return &InvalidParticipantsError{IDs: invalid}
	}
	return nil
}
