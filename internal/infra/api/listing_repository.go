package api

import (
	"context"
	"fmt"
	"log/slog"

	"subletswipe/internal/domain/entity"
	"subletswipe/internal/domain/repository"
)

type listingRepository struct {
	client *Client
	logger *slog.Logger
}

// NewListingRepository creates the listing CRUD binding.
func NewListingRepository(client *Client, logger *slog.Logger) repository.ListingRepository {
	return &listingRepository{client: client, logger: logger}
}

// Create posts a new listing and returns its server-assigned id.
func (r *listingRepository) Create(ctx context.Context, listing *entity.Listing) (int, error) {
	var out struct {
		Message string `json:"message"`
		ID      int    `json:"id"`
	}
	if err := r.client.Post(ctx, "/listings", listing, &out); err != nil {
		return 0, err
	}

	return out.ID, nil
}

// FindByID retrieves a single listing.
func (r *listingRepository) FindByID(ctx context.Context, id int) (*entity.Listing, error) {
	var listing entity.Listing
	if err := r.client.Get(ctx, fmt.Sprintf("/listings/%d", id), &listing); err != nil {
		if IsNotFound(err) {
			return nil, repository.ErrListingNotFound
		}

		return nil, err
	}

	return &listing, nil
}

// Update replaces the mutable fields of an existing listing.
func (r *listingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	return r.client.Put(ctx, fmt.Sprintf("/listings/%d", listing.ID), listing, nil)
}

// SetActive flips the listing's active flag.
func (r *listingRepository) SetActive(ctx context.Context, id int, active bool) error {
	body := map[string]bool{"is_active": active}

	err := r.client.Patch(ctx, fmt.Sprintf("/listings/%d", id), body, nil)
	if IsNotFound(err) {
		return repository.ErrListingNotFound
	}

	return err
}
