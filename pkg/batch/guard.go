package batch

import (
	"errors"
	"fmt"

	"github.com/go-pkgz/lgr"
)

// ErrMassDeletionBlocked signals that a bulk delete was refused because it
// would remove too large a fraction of existing records. The absence of a
// record from one remote listing is a weak deletion signal; a remote outage
// must not cascade into wiping most of the local data.
var ErrMassDeletionBlocked = errors.New("mass deletion blocked")

// DefaultMassDeletionRatio is the largest fraction of existing records a
// single reconciliation pass may delete.
const DefaultMassDeletionRatio = 0.5

// Guard checks proposed bulk deletions against the configured ratio.
type Guard struct {
	MaxRatio float64
}

// NewGuard makes a guard, falling back to the default ratio for
// non-positive values.
func NewGuard(maxRatio float64) *Guard {
	if maxRatio <= 0 {
		maxRatio = DefaultMassDeletionRatio
	}
	return &Guard{MaxRatio: maxRatio}
}

// CheckSafe allows the deletion when proposed/current <= MaxRatio and
// returns ErrMassDeletionBlocked otherwise. The boundary is inclusive:
// deleting exactly half of the records with the default ratio is allowed.
// The check is all-or-nothing; a blocked batch deletes nothing.
func (g *Guard) CheckSafe(currentCount, proposedDeleteCount int) error {
	if proposedDeleteCount == 0 {
		return nil
	}
	if currentCount <= 0 {
		lgr.Printf("[WARN] blocking deletion of %d records, no existing records counted", proposedDeleteCount)
		return fmt.Errorf("%w: %d proposed with %d existing", ErrMassDeletionBlocked, proposedDeleteCount, currentCount)
	}
	ratio := float64(proposedDeleteCount) / float64(currentCount)
	if ratio > g.MaxRatio {
		lgr.Printf("[WARN] blocking deletion of %d of %d records (%.0f%% > %.0f%% limit)",
			proposedDeleteCount, currentCount, ratio*100, g.MaxRatio*100)
		return fmt.Errorf("%w: %d of %d records (%.2f ratio)", ErrMassDeletionBlocked, proposedDeleteCount, currentCount, ratio)
	}
	return nil
}
