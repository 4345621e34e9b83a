package repository

import (
	"context"

	"subletswipe/internal/domain/entity"
)

// MatchRepository fetches candidate queues and mutual-match ids. Candidates
// come back in server score order and are presented strictly in that order.
type MatchRepository interface {
	// ListingCandidates returns the listing queue for a renter profile.
	ListingCandidates(ctx context.Context, renterProfileID int) ([]entity.MatchCandidate, error)

	// RenterCandidates returns the renter queue for a listing.
	RenterCandidates(ctx context.Context, listingID int) ([]entity.MatchCandidate, error)

	// Recommendations returns the fallback feed of listings other renters
	// are swiping on. Renter-only.
	Recommendations(ctx context.Context, renterProfileID int) ([]entity.MatchCandidate, error)

	// MutualListingIDs returns the ids of listings that mutually matched
	// with a renter profile.
	MutualListingIDs(ctx context.Context, renterProfileID int) ([]int, error)

	// MutualRenterIDs returns the ids of renter profiles that mutually
	// matched with a listing.
	MutualRenterIDs(ctx context.Context, listingID int) ([]int, error)
}

// SwipeRepository records accept/reject decisions against the server.
type SwipeRepository interface {
	// Submit records one decision for the acting resource and reports
	// whether it completed a mutual match. Callers never retry a failed
	// submission.
	Submit(ctx context.Context, actor entity.ActiveRole, decision entity.SwipeDecision) (entity.MatchResult, error)
}
