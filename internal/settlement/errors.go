package settlement

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors raised while normalizing an expense's splits. These
// indicate corrupt split data that must be corrected upstream; they are
// never retried and always surface to the caller.
var (
	// ErrShareTypeMismatch means the splits of one expense carry more
	// than one share type.
	ErrShareTypeMismatch = errors.New("all splits for an expense must have the same share type")

	// ErrUnknownShareType means a split carries a share type the engine
	// does not recognize.
	ErrUnknownShareType = errors.New("unknown share type")

	// ErrPercentageSumInvalid means percentage shares do not sum to 100
	// within tolerance.
	ErrPercentageSumInvalid = errors.New("percentages must sum to 100")

	// ErrWeightTotalInvalid means the sum of weight shares is not
	// strictly positive.
	ErrWeightTotalInvalid = errors.New("total weight must be positive")

	// ErrMissingAmount means an amount-type split has no explicit amount.
	ErrMissingAmount = errors.New("all splits must have explicit amounts")

	// ErrAmountSumMismatch means explicit split amounts do not sum to
	// the expense total.
	ErrAmountSumMismatch = errors.New("split amounts must sum to expense total")
)

// InvalidParticipantsError reports every participant ID referenced by an
// expense or split that does not exist in the trip's participant list.
// All offending IDs are collected before failing, so one pass surfaces
// the full extent of the inconsistency.
type InvalidParticipantsError struct {
	IDs []string
}

func (e *InvalidParticipantsError) Error() string {
	return fmt.Sprintf("unknown participant ids: %s", strings.Join(e.IDs, ", "))
}
