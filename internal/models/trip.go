package models

// Trip represents one shared trip whose expenses are settled together.
// All monetary amounts under a trip are integers in the minor unit of
// Currency; conversion from other currencies happens upstream.
type Trip struct {
	// ID is the unique identifier for the trip (UUID format).
	ID string `json:"id"`

	// Name is the display name of the trip (e.g., "Lisbon 2026").
	Name string `json:"name"`

	// Currency is the ISO 4217 code every amount under this trip is
	// denominated in (e.g., "EUR").
	Currency string `json:"currency"`

	// CreatedAt is the Unix timestamp when the trip was created.
	CreatedAt int64 `json:"createdAt"`
}

// Participant is a person taking part in a trip. Participants are
// referenced by ID from expenses, splits, and settlements.
type Participant struct {
	// ID is the unique identifier for the participant (UUID format).
	ID string `json:"id"`

	// TripID is the trip this participant belongs to.
	TripID string `json:"tripId"`

	// Name is the participant's display name.
	Name string `json:"name"`
}
