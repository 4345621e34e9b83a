package repository

import (
	"context"
	"errors"

	"subletswipe/internal/domain/entity"
)

// ErrListingNotFound is returned when a listing does not exist on the server.
var ErrListingNotFound = errors.New("listing not found")

// ListingRepository covers listing CRUD against the remote API.
type ListingRepository interface {
	// Create posts a new listing and returns its server-assigned id.
	Create(ctx context.Context, listing *entity.Listing) (int, error)

	// FindByID retrieves a single listing.
	FindByID(ctx context.Context, id int) (*entity.Listing, error)

	// Update replaces the mutable fields of an existing listing.
	Update(ctx context.Context, listing *entity.Listing) error

	// SetActive flips the listing's active flag; inactive listings drop out
	// of every candidate queue.
	SetActive(ctx context.Context, id int, active bool) error
}
