package api

import (
	"context"
	"fmt"
	"log/slog"

	"subletswipe/internal/domain/entity"
	"subletswipe/internal/domain/repository"
)

type renterRepository struct {
	client *Client
	logger *slog.Logger
}

// NewRenterRepository creates the renter profile CRUD binding.
func NewRenterRepository(client *Client, logger *slog.Logger) repository.RenterRepository {
	return &renterRepository{client: client, logger: logger}
}

// Create posts a new renter profile and returns its server-assigned id.
func (r *renterRepository) Create(ctx context.Context, profile *entity.RenterProfile) (int, error) {
	var out struct {
		Message string `json:"message"`
		ID      int    `json:"id"`
	}
	if err := r.client.Post(ctx, "/renters", profile, &out); err != nil {
		return 0, err
	}

	return out.ID, nil
}

// FindByID retrieves a single renter profile.
func (r *renterRepository) FindByID(ctx context.Context, id int) (*entity.RenterProfile, error) {
	var profile entity.RenterProfile
	if err := r.client.Get(ctx, fmt.Sprintf("/renters/%d", id), &profile); err != nil {
		if IsNotFound(err) {
			return nil, repository.ErrRenterProfileNotFound
		}

		return nil, err
	}

	return &profile, nil
}

// Update replaces the mutable fields of an existing renter profile.
func (r *renterRepository) Update(ctx context.Context, profile *entity.RenterProfile) error {
	return r.client.Put(ctx, fmt.Sprintf("/renters/%d", profile.ID), profile, nil)
}
