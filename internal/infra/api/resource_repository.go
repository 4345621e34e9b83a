package api

import (
	"context"
	"fmt"
	"log/slog"

	"subletswipe/internal/domain/repository"
)

type resourceRepository struct {
	client *Client
	logger *slog.Logger
}

// NewResourceRepository creates the resource lookup backed by the users API.
func NewResourceRepository(client *Client, logger *slog.Logger) repository.ResourceRepository {
	return &resourceRepository{client: client, logger: logger}
}

// FetchRenterProfileID resolves the user's renter profile id. The server
// answers 404 when the wizard was never completed; that is the "no profile"
// case, not an error.
func (r *resourceRepository) FetchRenterProfileID(ctx context.Context, userID int) (int, bool, error) {
	var profile struct {
		ID int `json:"id"`
	}
	err := r.client.Get(ctx, fmt.Sprintf("/users/%d/renter_profile", userID), &profile)
	if err != nil {
		if IsNotFound(err) {
			return 0, false, nil
		}

		return 0, false, err
	}

	return profile.ID, true, nil
}

// FetchListingIDs resolves the ids of every listing the user owns.
func (r *resourceRepository) FetchListingIDs(ctx context.Context, userID int) ([]int, error) {
	var out struct {
		ListingIDs []int `json:"listing_ids"`
	}
	if err := r.client.Get(ctx, fmt.Sprintf("/users/%d/listings", userID), &out); err != nil {
		return nil, err
	}

	return out.ListingIDs, nil
}
