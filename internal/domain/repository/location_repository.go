package repository

import (
	"context"

	"subletswipe/internal/domain/entity"
)

// LocationRepository covers the address autocomplete lookup used by the
// listing and renter forms.
type LocationRepository interface {
	// Autocomplete returns address predictions for a partial input.
	Autocomplete(ctx context.Context, input string) ([]entity.AddressPrediction, error)
}
