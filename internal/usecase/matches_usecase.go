package usecase

import (
	"context"

	"subletswipe/internal/domain/entity"
)

// MatchesUsecase surfaces mutual matches for the active role: listings that
// liked the renter back, or renters that liked the listing back.
type MatchesUsecase interface {
	// MutualMatches fetches the mutual-match ids for the role and hydrates
	// each into a display candidate. Hydration is best-effort: an id whose
	// document can no longer be fetched is skipped, not fatal.
	MutualMatches(ctx context.Context, role entity.ActiveRole) ([]entity.MatchCandidate, error)
}
