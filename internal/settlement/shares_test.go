package settlement

import (
	"errors"
	"testing"

	"github.com/crewledger/crewledger/internal/models"
)

func equalSplit(participantID string) models.ExpenseSplit {
	return models.ExpenseSplit{ParticipantID: participantID, ShareType: models.ShareEqual}
}

func ratioSplit(participantID string, shareType models.ShareType, share float64) models.ExpenseSplit {
	return models.ExpenseSplit{ParticipantID: participantID, ShareType: shareType, Share: share}
}

func amountSplit(participantID string, amount int64) models.ExpenseSplit {
	return models.ExpenseSplit{ParticipantID: participantID, ShareType: models.ShareAmount, Amount: &amount}
}

func TestNormalizeShares(t *testing.T) {
	tests := []struct {
		name    string
		splits  []models.ExpenseSplit
		total   int64
		want    []int64
		wantErr error
	}{
		{
			name:   "equal three way distributes remainder to first in stable order",
			splits: []models.ExpenseSplit{equalSplit("a"), equalSplit("b"), equalSplit("c")},
			total:  1000,
			want:   []int64{334, 333, 333},
		},
		{
			name:   "equal divides exactly when possible",
			splits: []models.ExpenseSplit{equalSplit("a"), equalSplit("b")},
			total:  1000,
			want:   []int64{500, 500},
		},
		{
			name: "percentage rounds to largest fractional part",
			splits: []models.ExpenseSplit{
				ratioSplit("a", models.SharePercentage, 33.33),
				ratioSplit("b", models.SharePercentage, 33.33),
				ratioSplit("c", models.SharePercentage, 33.34),
			},
			total: 1000,
			want:  []int64{333, 333, 334},
		},
		{
			name: "percentage not summing to 100 fails",
			splits: []models.ExpenseSplit{
				ratioSplit("a", models.SharePercentage, 50),
				ratioSplit("b", models.SharePercentage, 49),
			},
			total:   1000,
			wantErr: ErrPercentageSumInvalid,
		},
		{
			name: "weight distributes proportionally",
			splits: []models.ExpenseSplit{
				ratioSplit("a", models.ShareWeight, 1),
				ratioSplit("b", models.ShareWeight, 2),
				ratioSplit("c", models.ShareWeight, 3),
			},
			total: 1000,
			want:  []int64{167, 333, 500},
		},
		{
			name: "zero total weight fails",
			splits: []models.ExpenseSplit{
				ratioSplit("a", models.ShareWeight, 0),
				ratioSplit("b", models.ShareWeight, 0),
			},
			total:   1000,
			wantErr: ErrWeightTotalInvalid,
		},
		{
			name:   "amount passes explicit shares through",
			splits: []models.ExpenseSplit{amountSplit("a", 600), amountSplit("b", 400)},
			total:  1000,
			want:   []int64{600, 400},
		},
		{
			name:    "amount not summing to total fails",
			splits:  []models.ExpenseSplit{amountSplit("a", 600), amountSplit("b", 300)},
			total:   1000,
			wantErr: ErrAmountSumMismatch,
		},
		{
			name: "amount split without explicit amount fails",
			splits: []models.ExpenseSplit{
				amountSplit("a", 600),
				{ParticipantID: "b", ShareType: models.ShareAmount},
			},
			total:   1000,
			wantErr: ErrMissingAmount,
		},
		{
			name: "mixed share types fail",
			splits: []models.ExpenseSplit{
				equalSplit("a"),
				ratioSplit("b", models.SharePercentage, 100),
			},
			total:   1000,
			wantErr: ErrShareTypeMismatch,
		},
		{
			name: "unknown share type fails",
			splits: []models.ExpenseSplit{
				{ParticipantID: "a", ShareType: "shots"},
			},
			total:   1000,
			wantErr: ErrUnknownShareType,
		},
		{
			name:   "zero total yields all zeros",
			splits: []models.ExpenseSplit{equalSplit("a"), equalSplit("b")},
			total:  0,
			want:   []int64{0, 0},
		},
		{
			name:   "no splits yields no amounts",
			splits: nil,
			total:  1000,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeShares(tt.splits, tt.total)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NormalizeShares() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeShares() unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("NormalizeShares() returned %d amounts, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("amount[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalizeSharesSumsExactly(t *testing.T) {
	totals := []int64{1, 7, 99, 100, 101, 1000, 9999, 123457}
	splitSets := map[string][]models.ExpenseSplit{
		"equal": {equalSplit("a"), equalSplit("b"), equalSplit("c"), equalSplit("d"), equalSplit("e"), equalSplit("f"), equalSplit("g")},
		"percentage": {
			ratioSplit("a", models.SharePercentage, 12.5),
			ratioSplit("b", models.SharePercentage, 33.33),
			ratioSplit("c", models.SharePercentage, 20.17),
			ratioSplit("d", models.SharePercentage, 34),
		},
		"weight": {
			ratioSplit("a", models.ShareWeight, 1),
			ratioSplit("b", models.ShareWeight, 2.5),
			ratioSplit("c", models.ShareWeight, 0.25),
			ratioSplit("d", models.ShareWeight, 7),
		},
	}

	for name, splits := range splitSets {
		for _, total := range totals {
			got, err := NormalizeShares(splits, total)
			if err != nil {
				t.Fatalf("%s/%d: unexpected error: %v", name, total, err)
			}
			var sum int64
			for _, a := range got {
				sum += a
			}
			if sum != total {
				t.Errorf("%s/%d: shares sum to %d, want %d", name, total, sum, total)
			}
		}
	}
}

// Normalization must assign the same amount to the same participant no
// matter how the caller orders the splits.
func TestNormalizeSharesOrderIndependent(t *testing.T) {
	ordered := []models.ExpenseSplit{equalSplit("a"), equalSplit("b"), equalSplit("c")}
	shuffled := []models.ExpenseSplit{equalSplit("c"), equalSplit("a"), equalSplit("b")}

	wantByParticipant := map[string]int64{}
	orderedAmounts, err := NormalizeShares(ordered, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, s := range ordered {
		wantByParticipant[s.ParticipantID] = orderedAmounts[i]
	}

	shuffledAmounts, err := NormalizeShares(shuffled, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, s := range shuffled {
		if shuffledAmounts[i] != wantByParticipant[s.ParticipantID] {
			t.Errorf("participant %s got %d shuffled, %d ordered",
				s.ParticipantID, shuffledAmounts[i], wantByParticipant[s.ParticipantID])
		}
	}
}

// The tolerance admits user-entered rounding like 33.33+33.33+33.34 and
// float noise, but rejects a genuine 0.02 percentage-point gap.
func TestPercentageTolerance(t *testing.T) {
	within := []models.ExpenseSplit{
		ratioSplit("a", models.SharePercentage, 33.333),
		ratioSplit("b", models.SharePercentage, 33.333),
		ratioSplit("c", models.SharePercentage, 33.334),
	}
	if _, err := NormalizeShares(within, 1000); err != nil {
		t.Errorf("shares within tolerance rejected: %v", err)
	}

	outside := []models.ExpenseSplit{
		ratioSplit("a", models.SharePercentage, 50),
		ratioSplit("b", models.SharePercentage, 50.02),
	}
	if _, err := NormalizeShares(outside, 1000); !errors.Is(err, ErrPercentageSumInvalid) {
		t.Errorf("shares outside tolerance accepted, err = %v", err)
	}
}
