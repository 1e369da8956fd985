// Package report renders a settlement summary as a human-readable
// "who pays whom" plan, the text form the original export tooling printed.
package report

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"

	"github.com/crewledger/crewledger/internal/settlement"
)

// Render formats a settlement plan from the summary. Amounts are
// displayed in the trip currency; participants are shown by name where
// the summary's balances carry one, falling back to the raw ID.
func Render(summary *settlement.Summary) string {
	names := make(map[string]string, len(summary.Balances))
	for _, b := range summary.Balances {
		if b.ParticipantName != "" {
			names[b.ParticipantID] = b.ParticipantName
		}
	}
	displayName := func(id string) string {
		if name, ok := names[id]; ok {
			return name
		}
		return id
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Total trip cost: %s\n", format(summary.TotalExpenses, summary.Currency))
	if summary.UnsplitExpensesCount > 0 {
		fmt.Fprintf(&sb, "Unallocated: %s across %d expense(s)\n",
			format(summary.UnsplitExpensesTotal, summary.Currency), summary.UnsplitExpensesCount)
	}

	sb.WriteString("\nSettlement plan:\n")
	if len(summary.Settlements) == 0 {
		sb.WriteString("All balances are settled! No payments needed.\n")
		return sb.String()
	}
	for _, s := range summary.Settlements {
		fmt.Fprintf(&sb, "%s pays %s %s\n",
			displayName(s.FromParticipantID),
			displayName(s.ToParticipantID),
			format(s.Amount, summary.Currency),
		)
	}
	return sb.String()
}

// format renders a minor-unit amount in the given currency, e.g. "€12.34".
func format(amount int64, currency string) string {
	return money.New(amount, currency).Display()
}
