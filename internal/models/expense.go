package models

// ShareType declares how an expense's splits are interpreted. All splits
// belonging to one expense must carry the same ShareType.
type ShareType string

const (
	// ShareEqual divides the expense evenly among its splits.
	ShareEqual ShareType = "equal"

	// SharePercentage divides by percentage; the shares of one expense
	// must sum to 100.
	SharePercentage ShareType = "percentage"

	// ShareWeight divides proportionally to each split's weight.
	ShareWeight ShareType = "weight"

	// ShareAmount uses each split's explicit Amount; the amounts must
	// sum to the expense total exactly.
	ShareAmount ShareType = "amount"
)

// Valid reports whether t is one of the known share types.
func (t ShareType) Valid() bool {
	switch t {
	case ShareEqual, SharePercentage, ShareWeight, ShareAmount:
		return true
	}
	return false
}

// Expense is a single payment made by one participant on behalf of the
// trip. How it is divided among participants lives in ExpenseSplit rows.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// TripID is the trip this expense belongs to.
	TripID string `json:"tripId"`

	// Description is the human-readable label (e.g., "Groceries").
	Description string `json:"description"`

	// Amount is the expense total in minor units of the trip currency.
	// Never negative.
	Amount int64 `json:"amount"`

	// PaidBy is the ID of the participant who paid.
	PaidBy string `json:"paidBy"`

	// Date is the Unix timestamp of when the expense occurred.
	Date int64 `json:"date"`
}

// ExpenseSplit assigns one participant's share of an expense.
//
// The meaning of Share depends on the expense's ShareType: it is ignored
// for equal splits, a percentage for percentage splits, and a relative
// weight for weight splits. Amount is set only for amount splits.
type ExpenseSplit struct {
	// ExpenseID is the expense this split belongs to.
	ExpenseID string `json:"expenseId"`

	// ParticipantID is the participant this share is assigned to.
	ParticipantID string `json:"participantId"`

	// ShareType declares how Share is interpreted.
	ShareType ShareType `json:"shareType"`

	// Share is the ratio input. It stays a float because it only feeds
	// a deterministic floor + largest-remainder computation; no float
	// ever becomes a final amount.
	Share float64 `json:"share"`

	// Amount is the explicit share in minor units, set only when
	// ShareType is ShareAmount.
	Amount *int64 `json:"amount,omitempty"`
}
