package usecase

import (
	"context"

	"subletswipe/internal/domain/entity"
)

// CreateRenterProfileInput defines the data the renter wizard collects.
type CreateRenterProfileInput struct {
	Budget        float64 `json:"budget" validate:"required,gt=0"`
	AddressString string  `json:"address_string" validate:"required"`
	StartDate     string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	NumBedrooms   int     `json:"num_bedrooms" validate:"min=0,max=20"`
	NumBathrooms  int     `json:"num_bathrooms" validate:"min=0,max=20"`
	HasPet        bool    `json:"has_pet"`
	Bio           string  `json:"bio,omitempty" validate:"max=500"`
}

// UpdateRenterProfileInput defines the data that may change on a profile.
type UpdateRenterProfileInput struct {
	Budget       *float64 `json:"budget,omitempty" validate:"omitempty,gt=0"`
	StartDate    *string  `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate      *string  `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	NumBedrooms  *int     `json:"num_bedrooms,omitempty" validate:"omitempty,min=0,max=20"`
	NumBathrooms *int     `json:"num_bathrooms,omitempty" validate:"omitempty,min=0,max=20"`
	HasPet       *bool    `json:"has_pet,omitempty"`
	Bio          *string  `json:"bio,omitempty" validate:"omitempty,max=500"`
}

// RenterUsecase covers renter profile CRUD. A user owns at most one profile.
type RenterUsecase interface {
	// Create validates the wizard input and posts the profile, returning
	// its id. The caller equips it through the role resolver.
	Create(ctx context.Context, userID int, input *CreateRenterProfileInput) (int, error)

	// Get retrieves one renter profile.
	Get(ctx context.Context, id int) (*entity.RenterProfile, error)

	// Update validates and applies a partial update.
	Update(ctx context.Context, id int, input *UpdateRenterProfileInput) error
}
