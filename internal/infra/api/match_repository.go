package api

import (
	"context"
	"fmt"
	"log/slog"

	"subletswipe/internal/domain/entity"
	"subletswipe/internal/domain/repository"
)

type matchRepository struct {
	client *Client
	logger *slog.Logger
}

// NewMatchRepository creates the candidate/mutual-match lookup.
func NewMatchRepository(client *Client, logger *slog.Logger) repository.MatchRepository {
	return &matchRepository{client: client, logger: logger}
}

// ListingCandidates returns the listing queue for a renter profile, in server
// score order.
func (r *matchRepository) ListingCandidates(ctx context.Context, renterProfileID int) ([]entity.MatchCandidate, error) {
	var out struct {
		Matches []entity.MatchCandidate `json:"matches"`
	}
	if err := r.client.Get(ctx, fmt.Sprintf("/renters/%d/listing_matches", renterProfileID), &out); err != nil {
		return nil, err
	}

	return out.Matches, nil
}

// RenterCandidates returns the renter queue for a listing, in server score
// order.
func (r *matchRepository) RenterCandidates(ctx context.Context, listingID int) ([]entity.MatchCandidate, error) {
	var out struct {
		Matches []entity.MatchCandidate `json:"matches"`
	}
	if err := r.client.Get(ctx, fmt.Sprintf("/listings/%d/renter_matches", listingID), &out); err != nil {
		return nil, err
	}

	return out.Matches, nil
}

// Recommendations returns the fallback feed. Each result's first photo URL is
// hoisted into the flat photo_url field right here, so nothing downstream
// ever branches on the photos shape.
func (r *matchRepository) Recommendations(ctx context.Context, renterProfileID int) ([]entity.MatchCandidate, error) {
	var out struct {
		Recommendations []entity.MatchCandidate `json:"recommendations"`
	}
	if err := r.client.Get(ctx, fmt.Sprintf("/listings/recommendations/%d", renterProfileID), &out); err != nil {
		return nil, err
	}

	for i := range out.Recommendations {
		out.Recommendations[i].NormalizePhotos()
	}

	return out.Recommendations, nil
}

// MutualListingIDs returns ids of listings mutually matched with the renter.
func (r *matchRepository) MutualListingIDs(ctx context.Context, renterProfileID int) ([]int, error) {
	var out struct {
		ListingIDs []int `json:"listing_ids"`
	}
	if err := r.client.Get(ctx, fmt.Sprintf("/mutual-matches/renter/%d", renterProfileID), &out); err != nil {
		return nil, err
	}

	return out.ListingIDs, nil
}

// MutualRenterIDs returns ids of renter profiles mutually matched with the
// listing.
func (r *matchRepository) MutualRenterIDs(ctx context.Context, listingID int) ([]int, error) {
	var out struct {
		RenterProfileIDs []int `json:"renter_profile_ids"`
	}
	if err := r.client.Get(ctx, fmt.Sprintf("/mutual-matches/listing/%d", listingID), &out); err != nil {
		return nil, err
	}

	return out.RenterProfileIDs, nil
}

type swipeRepository struct {
	client *Client
	logger *slog.Logger
}

// NewSwipeRepository creates the swipe submission endpoint binding.
func NewSwipeRepository(client *Client, logger *slog.Logger) repository.SwipeRepository {
	return &swipeRepository{client: client, logger: logger}
}

// Submit records one decision. The endpoint depends on which side of the
// match the actor is on.
func (r *swipeRepository) Submit(ctx context.Context, actor entity.ActiveRole, decision entity.SwipeDecision) (entity.MatchResult, error) {
	path := fmt.Sprintf("/swipes/listing/%d", actor.ResourceID)
	if actor.IsRenter {
		path = fmt.Sprintf("/swipes/renter/%d", actor.ResourceID)
	}

	var result entity.MatchResult
	if err := r.client.Post(ctx, path, decision, &result); err != nil {
		return entity.MatchResult{}, err
	}

	return result, nil
}
