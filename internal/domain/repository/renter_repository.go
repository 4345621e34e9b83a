package repository

import (
	"context"
	"errors"

	"subletswipe/internal/domain/entity"
)

// ErrRenterProfileNotFound is returned when a renter profile does not exist.
var ErrRenterProfileNotFound = errors.New("renter profile not found")

// RenterRepository covers renter profile CRUD against the remote API.
type RenterRepository interface {
	// Create posts a new renter profile and returns its server-assigned id.
	Create(ctx context.Context, profile *entity.RenterProfile) (int, error)

	// FindByID retrieves a single renter profile.
	FindByID(ctx context.Context, id int) (*entity.RenterProfile, error)

	// Update replaces the mutable fields of an existing renter profile.
	Update(ctx context.Context, profile *entity.RenterProfile) error
}
