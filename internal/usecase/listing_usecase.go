package usecase

import (
	"context"

	"subletswipe/internal/domain/entity"
)

// PhotoUpload is one raw image selected in the listing form, not yet hosted.
type PhotoUpload struct {
	Filename string
	Data     []byte
}

// CreateListingInput defines the data required to create a listing.
type CreateListingInput struct {
	AddressString string        `json:"address_string" validate:"required"`
	StartDate     string        `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string        `json:"end_date" validate:"required,datetime=2006-01-02"`
	AskingPrice   float64       `json:"asking_price" validate:"required,gt=0"`
	NumBedrooms   int           `json:"num_bedrooms" validate:"min=0,max=20"`
	NumBathrooms  int           `json:"num_bathrooms" validate:"min=0,max=20"`
	PetFriendly   bool          `json:"pet_friendly"`
	UtilitiesIncl bool          `json:"utilities_incl"`
	BuildingType  string        `json:"building_type,omitempty"`
	Description   string        `json:"description,omitempty" validate:"max=2000"`
	Amenities     []string      `json:"amenities,omitempty"`
	Photos        []PhotoUpload `json:"-"`
}

// UpdateListingInput defines the data that may change on an existing listing.
type UpdateListingInput struct {
	AskingPrice   *float64 `json:"asking_price,omitempty" validate:"omitempty,gt=0"`
	StartDate     *string  `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate       *string  `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PetFriendly   *bool    `json:"pet_friendly,omitempty"`
	UtilitiesIncl *bool    `json:"utilities_incl,omitempty"`
	Description   *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Amenities     []string `json:"amenities,omitempty"`

	// RemovePhotoURLs lists hosted photos the user deleted in the edit
	// form; they are removed from the host as well as the listing.
	RemovePhotoURLs []string `json:"-"`
}

// ListingUsecase covers listing CRUD for the lister side.
type ListingUsecase interface {
	// Create validates the input, uploads its photos best-effort, then
	// posts the listing. Returns the new listing id; the caller equips it
	// through the role resolver when it is the user's first listing.
	Create(ctx context.Context, userID int, input *CreateListingInput) (int, error)

	// Get retrieves one listing.
	Get(ctx context.Context, id int) (*entity.Listing, error)

	// Update validates and applies a partial update.
	Update(ctx context.Context, id int, input *UpdateListingInput) error

	// Deactivate hides the listing from every candidate queue.
	Deactivate(ctx context.Context, id int) error

	// AddressSuggestions proxies the address autocomplete for the form.
	AddressSuggestions(ctx context.Context, query string) ([]entity.AddressPrediction, error)
}
