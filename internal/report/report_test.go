package report

import (
	"strings"
	"testing"

	"github.com/crewledger/crewledger/internal/settlement"
)

func TestRender(t *testing.T) {
	summary := &settlement.Summary{
		TripID:        "t1",
		Currency:      "EUR",
		TotalExpenses: 360050,
		Balances: []settlement.ParticipantBalance{
			{ParticipantID: "alice", ParticipantName: "Alice", NetPosition: 2000},
			{ParticipantID: "bob", ParticipantName: "Bob", NetPosition: -2000},
		},
		Settlements: []settlement.SuggestedSettlement{
			{FromParticipantID: "bob", ToParticipantID: "alice", Amount: 2000},
		},
	}

	got := Render(summary)

	if !strings.Contains(got, "€3,600.50") {
		t.Errorf("expected formatted total in output, got:\n%s", got)
	}
	if !strings.Contains(got, "Bob pays Alice") {
		t.Errorf("expected named payment line, got:\n%s", got)
	}
	if !strings.Contains(got, "€20.00") {
		t.Errorf("expected formatted payment amount, got:\n%s", got)
	}
}

func TestRenderSettled(t *testing.T) {
	summary := &settlement.Summary{Currency: "USD", TotalExpenses: 1000}
	got := Render(summary)
	if !strings.Contains(got, "No payments needed") {
		t.Errorf("expected settled message, got:\n%s", got)
	}
}

func TestRenderUnallocated(t *testing.T) {
	summary := &settlement.Summary{
		Currency:             "USD",
		TotalExpenses:        5000,
		UnsplitExpensesTotal: 1500,
		UnsplitExpensesCount: 2,
	}
	got := Render(summary)
	if !strings.Contains(got, "$15.00 across 2 expense(s)") {
		t.Errorf("expected unallocated line, got:\n%s", got)
	}
}
