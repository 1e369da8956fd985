package settlement

import (
	"fmt"
	"math"
	"sort"

	"github.com/crewledger/crewledger/internal/models"
)

// percentageTolerance is how far percentage shares may stray from 100.
// The 0.01 slack absorbs user-entered values like 33.33/33.33/33.34; the
// ulp term absorbs accumulated float error when many shares are summed.
var percentageTolerance = 0.01 + (math.Nextafter(1, 2)-1)*100

// NormalizeShares converts one expense's splits into exact per-participant
// amounts in minor units, one output per input split, in input order,
// summing exactly to total.
//
// Results do not depend on the caller's split ordering: shares are
// computed on a stable ordering by participant ID (original index breaks
// ties) and mapped back, so database or JSON ordering never affects which
// participant absorbs a rounding remainder.
func NormalizeShares(splits []models.ExpenseSplit, total int64) ([]int64, error) {
	if len(splits) == 0 {
		return nil, nil
	}

	normalized := make([]int64, len(splits))
	if total == 0 {
		return normalized, nil
	}

	shareType := splits[0].ShareType
	for _, s := range splits {
		if s.ShareType != shareType {
			return nil, ErrShareTypeMismatch
		}
	}

	// Stable ordering by participant ID.
	order := make([]int, len(splits))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return splits[order[a]].ParticipantID < splits[order[b]].ParticipantID
	})
	stable := make([]models.ExpenseSplit, len(splits))
	for i, idx := range order {
		stable[i] = splits[idx]
	}

	var (
		amounts []int64
		err     error
	)
	switch shareType {
	case models.ShareEqual:
		amounts = normalizeEqual(len(stable), total)
	case models.SharePercentage:
		amounts, err = normalizePercentage(stable, total)
	case models.ShareWeight:
		amounts, err = normalizeWeight(stable, total)
	case models.ShareAmount:
		amounts, err = normalizeAmount(stable, total)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownShareType, shareType)
	}
	if err != nil {
		return nil, err
	}

	// Map back to the caller's order.
	for i, idx := range order {
		normalized[idx] = amounts[i]
	}
	return normalized, nil
}

// normalizeEqual divides total evenly; the first remainder entries in
// stable order absorb one extra minor unit each.
func normalizeEqual(count int, total int64) []int64 {
	n := int64(count)
	base := total / n
	remainder := total - base*n

	result := make([]int64, count)
	for i := range result {
		result[i] = base
		if int64(i) < remainder {
			result[i]++
		}
	}
	return result
}

func normalizePercentage(stable []models.ExpenseSplit, total int64) ([]int64, error) {
	var totalPercentage float64
	for _, s := range stable {
		totalPercentage += s.Share
	}
	if math.Abs(totalPercentage-100) > percentageTolerance {
		return nil, fmt.Errorf("%w, got %v", ErrPercentageSumInvalid, totalPercentage)
	}

	exact := make([]float64, len(stable))
	for i, s := range stable {
		exact[i] = s.Share / 100 * float64(total)
	}
	return distributeRemainder(exact, total), nil
}

func normalizeWeight(stable []models.ExpenseSplit, total int64) ([]int64, error) {
	var totalWeight float64
	for _, s := range stable {
		totalWeight += s.Share
	}
	if totalWeight <= 0 {
		return nil, fmt.Errorf("%w, got %v", ErrWeightTotalInvalid, totalWeight)
	}

	exact := make([]float64, len(stable))
	for i, s := range stable {
		exact[i] = s.Share / totalWeight * float64(total)
	}
	return distributeRemainder(exact, total), nil
}

func normalizeAmount(stable []models.ExpenseSplit, total int64) ([]int64, error) {
	missing := 0
	for _, s := range stable {
		if s.Amount == nil {
			missing++
		}
	}
	if missing > 0 {
		return nil, fmt.Errorf("%w; found %d missing amount(s)", ErrMissingAmount, missing)
	}

	amounts := make([]int64, len(stable))
	var sum int64
	for i, s := range stable {
		amounts[i] = *s.Amount
		sum += *s.Amount
	}
	if sum != total {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrAmountSumMismatch, total, sum)
	}
	return amounts, nil
}

// distributeRemainder floors each exact share, then hands the leftover
// minor units one at a time to the entries with the largest fractional
// parts, ties broken by stable index.
//
// When percentage shares sum slightly above 100 but still inside the
// tolerance, the floored shares can already exceed total; the remainder
// is then negative, the loop below does nothing, and the outputs sum to
// more than total. That matches the behavior shipped in production, so
// it is kept as-is pending a product decision on the tolerance itself.
func distributeRemainder(exact []float64, total int64) []int64 {
	result := make([]int64, len(exact))
	var baseTotal int64
	for i, a := range exact {
		result[i] = int64(math.Floor(a))
		baseTotal += result[i]
	}
	remainder := total - baseTotal

	byFraction := make([]int, len(exact))
	for i := range byFraction {
		byFraction[i] = i
	}
	sort.SliceStable(byFraction, func(a, b int) bool {
		fa := exact[byFraction[a]] - math.Floor(exact[byFraction[a]])
		fb := exact[byFraction[b]] - math.Floor(exact[byFraction[b]])
		return fa > fb
	})

	for i := 0; int64(i) < remainder; i++ {
		result[byFraction[i]]++
	}
	return result
}
