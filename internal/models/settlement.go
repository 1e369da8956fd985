package models

// Settlement records a real payment already made between two trip
// participants to clear debt. It is input to the settlement engine,
// distinct from the suggested payments the engine produces.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string `json:"id"`

	// TripID is the trip this settlement belongs to.
	TripID string `json:"tripId"`

	// FromParticipantID is the participant who paid (debtor settling up).
	FromParticipantID string `json:"fromParticipantId"`

	// ToParticipantID is the participant who received the payment.
	ToParticipantID string `json:"toParticipantId"`

	// Amount is the payment amount in minor units of the trip currency.
	Amount int64 `json:"amount"`

	// Note is an optional description for the settlement.
	Note string `json:"note,omitempty"`

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64 `json:"createdAt"`
}
