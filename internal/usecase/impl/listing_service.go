package impl

import (
	"context"
	"log/slog"

	"subletswipe/internal/domain/entity"
	"subletswipe/internal/domain/repository"
	"subletswipe/internal/domain/service"
	"subletswipe/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// listingService implements the ListingUsecase interface.
type listingService struct {
	listings  repository.ListingRepository
	locations repository.LocationRepository
	photos    service.PhotoService
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewListingService is the constructor for listingService.
func NewListingService(
	listings repository.ListingRepository,
	locations repository.LocationRepository,
	photos service.PhotoService,
	logger *slog.Logger,
) usecase.ListingUsecase {
	return &listingService{
		listings:  listings,
		locations: locations,
		photos:    photos,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}

// Create validates the input, uploads its photos best-effort, then posts the
// listing. A failed upload drops that photo, never the listing.
func (srv *listingService) Create(ctx context.Context, userID int, input *usecase.CreateListingInput) (int, error) {
	if err := srv.validate.Struct(input); err != nil {
		return 0, errors.Wrap(err, "validate listing input")
	}

	hosted := srv.uploadPhotos(ctx, input.Photos)

	listing := &entity.Listing{
		UserID:        userID,
		IsActive:      true,
		AddressString: input.AddressString,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		AskingPrice:   input.AskingPrice,
		NumBedrooms:   input.NumBedrooms,
		NumBathrooms:  input.NumBathrooms,
		PetFriendly:   input.PetFriendly,
		UtilitiesIncl: input.UtilitiesIncl,
		BuildingType:  input.BuildingType,
		Description:   input.Description,
		Amenities:     input.Amenities,
		Photos:        hosted,
	}

	id, err := srv.listings.Create(ctx, listing)
	if err != nil {
		return 0, errors.Wrap(err, "create listing")
	}
	srv.logger.Info("listing created", slog.Int("listingID", id), slog.Int("userID", userID))

	return id, nil
}

func (srv *listingService) uploadPhotos(ctx context.Context, uploads []usecase.PhotoUpload) entity.PhotoList {
	hosted := make(entity.PhotoList, 0, len(uploads))
	for _, upload := range uploads {
		photo, err := srv.photos.Upload(ctx, upload.Data, upload.Filename)
		if err != nil {
			srv.logger.Warn("photo upload failed, dropping photo",
				slog.String("filename", upload.Filename), slog.Any("error", err))

			continue
		}
		hosted = append(hosted, photo)
	}

	return hosted
}

// Get retrieves one listing.
func (srv *listingService) Get(ctx context.Context, id int) (*entity.Listing, error) {
	listing, err := srv.listings.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "find listing")
	}

	return listing, nil
}

// Update validates and applies a partial update.
func (srv *listingService) Update(ctx context.Context, id int, input *usecase.UpdateListingInput) error {
	if err := srv.validate.Struct(input); err != nil {
		return errors.Wrap(err, "validate listing update")
	}

	listing, err := srv.listings.FindByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "find listing")
	}

	applyListingUpdates(listing, input)

	if len(input.RemovePhotoURLs) > 0 {
		srv.removePhotos(ctx, listing, input.RemovePhotoURLs)
	}

	if err := srv.listings.Update(ctx, listing); err != nil {
		return errors.Wrap(err, "update listing")
	}

	return nil
}

// removePhotos drops the given URLs from the listing and asks the host to
// delete them. A host failure is logged and ignored; the listing no longer
// references the photo either way.
func (srv *listingService) removePhotos(ctx context.Context, listing *entity.Listing, urls []string) {
	if err := srv.photos.Delete(ctx, urls); err != nil {
		srv.logger.Warn("photo host delete failed", slog.Any("error", err))
	}

	remove := make(map[string]bool, len(urls))
	for _, url := range urls {
		remove[url] = true
	}

	kept := listing.Photos[:0]
	for _, photo := range listing.Photos {
		if !remove[photo.URL] {
			kept = append(kept, photo)
		}
	}
	listing.Photos = kept
}

func applyListingUpdates(listing *entity.Listing, input *usecase.UpdateListingInput) {
	if input.AskingPrice != nil {
		listing.AskingPrice = *input.AskingPrice
	}
	if input.StartDate != nil {
		listing.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		listing.EndDate = *input.EndDate
	}
	if input.PetFriendly != nil {
		listing.PetFriendly = *input.PetFriendly
	}
	if input.UtilitiesIncl != nil {
		listing.UtilitiesIncl = *input.UtilitiesIncl
	}
	if input.Description != nil {
		listing.Description = *input.Description
	}
	if input.Amenities != nil {
		listing.Amenities = input.Amenities
	}
}

// Deactivate hides the listing from every candidate queue.
func (srv *listingService) Deactivate(ctx context.Context, id int) error {
	if err := srv.listings.SetActive(ctx, id, false); err != nil {
		return errors.Wrap(err, "deactivate listing")
	}
	srv.logger.Info("listing deactivated", slog.Int("listingID", id))

	return nil
}

// AddressSuggestions proxies the address autocomplete for the form.
func (srv *listingService) AddressSuggestions(ctx context.Context, query string) ([]entity.AddressPrediction, error) {
	if query == "" {
		return nil, nil
	}

	predictions, err := srv.locations.Autocomplete(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "address autocomplete")
	}

	return predictions, nil
}
