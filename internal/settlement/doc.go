// Package settlement computes who owes whom for a trip.
//
// The pipeline has five stages, each a pure function over its inputs:
//
//  1. NormalizeShares turns one expense's split definitions into exact
//     integer amounts that sum to the expense total.
//  2. Classify partitions expenses into unallocated, personal, and split
//     categories; only split expenses move money between participants.
//  3. CalculateBalances aggregates split expenses into per-participant
//     net positions.
//  4. ApplySettlements adjusts balances for payments already made.
//  5. Optimize suggests the minimal payments that settle all debts.
//
// Two invariants hold throughout: the normalized shares of an expense sum
// exactly to its amount, and the net positions of any valid balance set
// sum to zero. Everything is integer arithmetic in minor currency units;
// floats appear only as share ratios feeding the rounding step.
//
// Nothing here does I/O or holds state, so identical inputs always yield
// identical outputs and concurrent use needs no locking.
package settlement
