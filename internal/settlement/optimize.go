package settlement

import "sort"

// SuggestedSettlement is one payment the engine proposes to clear debt.
// Amount is always positive.
type SuggestedSettlement struct {
	FromParticipantID string `json:"fromParticipantId"`
	ToParticipantID   string `json:"toParticipantId"`
	Amount            int64  `json:"amount"`
}

// Optimize produces the payments that settle all balances with a minimal
// transaction count, by greedily matching the largest creditor with the
// largest debtor.
//
// Participants with zero net position are skipped. Because every account
// is fully drained before its pointer advances, no participant appears on
// both sides of the suggestions, and for n participants with non-zero
// balance at most n-1 payments are emitted. Output is deterministic:
// both partitions are sorted by amount with participant ID as tie-break.
func Optimize(balances []ParticipantBalance) []SuggestedSettlement {
	type account struct {
		id        string
		remaining int64
	}

	var creditors, debtors []account
	for _, b := range balances {
		switch {
		case b.NetPosition > 0:
			creditors = append(creditors, account{id: b.ParticipantID, remaining: b.NetPosition})
		case b.NetPosition < 0:
			debtors = append(debtors, account{id: b.ParticipantID, remaining: -b.NetPosition})
		}
	}

	byAmountDesc := func(accounts []account) func(a, b int) bool {
		return func(a, b int) bool {
			if accounts[a].remaining != accounts[b].remaining {
				return accounts[a].remaining > accounts[b].remaining
			}
			return accounts[a].id < accounts[b].id
		}
	}
	sort.Slice(creditors, byAmountDesc(creditors))
	sort.Slice(debtors, byAmountDesc(debtors))

	var suggestions []SuggestedSettlement
	d, c := 0, 0
	for d < len(debtors) && c < len(creditors) {
		amount := debtors[d].remaining
		if creditors[c].remaining < amount {
			amount = creditors[c].remaining
		}

		suggestions = append(suggestions, SuggestedSettlement{
			FromParticipantID: debtors[d].id,
			ToParticipantID:   creditors[c].id,
			Amount:            amount,
		})

		debtors[d].remaining -= amount
		creditors[c].remaining -= amount
		if debtors[d].remaining == 0 {
			d++
		}
		if creditors[c].remaining == 0 {
			c++
		}
	}
	// Conservation guarantees both lists exhaust together.
	return suggestions
}
