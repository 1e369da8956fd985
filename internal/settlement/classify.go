package settlement

import "github.com/crewledger/crewledger/internal/models"

// Classification partitions a trip's expenses by how they affect balances.
//
// Unallocated expenses have no splits at all and cannot enter balance
// math; they are summed and their IDs collected for follow-up. Personal
// expenses have exactly one split naming the payer, a self-payment with
// zero inter-participant effect. Everything else is a split expense, the
// only kind fed to balance calculation.
type Classification struct {
	// SplitExpenses are the expenses that affect inter-participant
	// balances, in input order.
	SplitExpenses []models.Expense

	// SplitTotal is the summed amount of SplitExpenses.
	SplitTotal int64

	// PersonalTotal is the summed amount of personal expenses.
	PersonalTotal int64

	// UnallocatedTotal is the summed amount of expenses with no splits.
	UnallocatedTotal int64

	// UnallocatedIDs lists the unallocated expense IDs, in input order.
	UnallocatedIDs []string
}

// UnallocatedCount is the number of expenses that have no splits.
func (c Classification) UnallocatedCount() int {
	return len(c.UnallocatedIDs)
}

// Classify partitions expenses into unallocated, personal, and split
// categories using the splits grouped by expense ID.
func Classify(expenses []models.Expense, splitsByExpense map[string][]models.ExpenseSplit) Classification {
	var c Classification
	for _, exp := range expenses {
		splits := splitsByExpense[exp.ID]
		switch {
		case len(splits) == 0:
			c.UnallocatedTotal += exp.Amount
			c.UnallocatedIDs = append(c.UnallocatedIDs, exp.ID)
		case len(splits) == 1 && splits[0].ParticipantID == exp.PaidBy:
			// Including these would only add a wash entry where the
			// payer owes themselves the full amount.
			c.PersonalTotal += exp.Amount
		default:
			c.SplitTotal += exp.Amount
			c.SplitExpenses = append(c.SplitExpenses, exp)
		}
	}
	return c
}
