package settlement

import (
	"testing"

	"github.com/crewledger/crewledger/internal/models"
)

func TestClassify(t *testing.T) {
	expenses := []models.Expense{
		{ID: "e1", Amount: 3000, PaidBy: "alice"}, // split between two
		{ID: "e2", Amount: 500, PaidBy: "alice"},  // personal (self-payment)
		{ID: "e3", Amount: 700, PaidBy: "bob"},    // no splits recorded
		{ID: "e4", Amount: 900, PaidBy: "bob"},    // single split, not the payer
		{ID: "e5", Amount: 100, PaidBy: "alice"},  // no splits recorded
	}
	splitsByExpense := map[string][]models.ExpenseSplit{
		"e1": {equalSplit("alice"), equalSplit("bob")},
		"e2": {equalSplit("alice")},
		"e4": {equalSplit("alice")},
	}

	c := Classify(expenses, splitsByExpense)

	if c.SplitTotal != 3900 {
		t.Errorf("SplitTotal = %d, want 3900", c.SplitTotal)
	}
	if len(c.SplitExpenses) != 2 || c.SplitExpenses[0].ID != "e1" || c.SplitExpenses[1].ID != "e4" {
		t.Errorf("SplitExpenses = %v, want [e1 e4]", c.SplitExpenses)
	}
	if c.PersonalTotal != 500 {
		t.Errorf("PersonalTotal = %d, want 500", c.PersonalTotal)
	}
	if c.UnallocatedTotal != 800 {
		t.Errorf("UnallocatedTotal = %d, want 800", c.UnallocatedTotal)
	}
	if c.UnallocatedCount() != 2 {
		t.Errorf("UnallocatedCount() = %d, want 2", c.UnallocatedCount())
	}
	if len(c.UnallocatedIDs) != 2 || c.UnallocatedIDs[0] != "e3" || c.UnallocatedIDs[1] != "e5" {
		t.Errorf("UnallocatedIDs = %v, want [e3 e5]", c.UnallocatedIDs)
	}
}

func TestClassifyEmpty(t *testing.T) {
	c := Classify(nil, nil)
	if c.SplitTotal != 0 || c.PersonalTotal != 0 || c.UnallocatedTotal != 0 {
		t.Errorf("expected zero totals, got %+v", c)
	}
	if c.UnallocatedCount() != 0 || len(c.SplitExpenses) != 0 {
		t.Errorf("expected empty classification, got %+v", c)
	}
}
