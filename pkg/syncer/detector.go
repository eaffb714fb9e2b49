package syncer

import (
	"github.com/feedsync/feedsync/pkg/domain"
)

// Outcome is the detector's decision for one article during a pull sync.
type Outcome int

// detector outcomes
const (
	// OutcomeAdopt means no local changes exist, remote state is taken as is.
	OutcomeAdopt Outcome = iota
	// OutcomeInSync means local changes exist but already match remote; only
	// the sync marker advances.
	OutcomeInSync
	// OutcomeConflict means local changes diverge from remote. Remote wins:
	// the service reports no change timestamps, so there is no sound basis
	// to prefer the local value.
	OutcomeConflict
)

// Decision carries the outcome and, for conflicts, the classification.
type Decision struct {
	Outcome      Outcome
	ConflictType domain.ConflictType
}

// Detect runs the per-article state machine from the sync design: articles
// without local changes adopt remote state, matching local changes advance
// the sync marker, diverging local changes are conflicts resolved in
// remote's favor. Classification is computed per article, never inferred
// from aggregates.
func Detect(local domain.Article, remoteState domain.ArticleState) Decision {
	if !local.HasLocalChanges() {
		return Decision{Outcome: OutcomeAdopt}
	}

	ct, diverged := domain.ClassifyConflict(local.State(), remoteState)
	if !diverged {
		return Decision{Outcome: OutcomeInSync}
	}
	return Decision{Outcome: OutcomeConflict, ConflictType: ct}
}
