// Package models defines the core domain models for CrewLedger.
//
// # Conventions
//
// All monetary amounts are int64 values in the minor unit of the owning
// trip's currency (cents for EUR/USD). Floats appear only as split
// ratios (percentages, weights) and never as a final amount.
//
// Relationships use ID strings instead of pointers to avoid circular
// references; a Trip owns Participants, Expenses (with their
// ExpenseSplits), and recorded Settlements.
//
// The computed, never-persisted settlement types (participant balances,
// suggested payments, the trip summary) live in internal/settlement.
package models
