package impl

import (
	"context"
	"log/slog"
	"testing"

	"subletswipe/internal/domain/entity"
	"subletswipe/internal/domain/repository"
	mockRepo "subletswipe/internal/mocks/repository"
	mockSvc "subletswipe/internal/mocks/service"
	"subletswipe/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type listingServiceFixture struct {
	service   usecase.ListingUsecase
	listings  *mockRepo.MockListingRepository
	locations *mockRepo.MockLocationRepository
	photos    *mockSvc.MockPhotoService
}

func createTestListingService(t *testing.T) listingServiceFixture {
	t.Helper()

	listings := mockRepo.NewMockListingRepository(t)
	locations := mockRepo.NewMockLocationRepository(t)
	photos := mockSvc.NewMockPhotoService(t)
	service := NewListingService(listings, locations, photos, slog.New(slog.DiscardHandler))

	return listingServiceFixture{
		service:   service,
		listings:  listings,
		locations: locations,
		photos:    photos,
	}
}

func validCreateListingInput() *usecase.CreateListingInput {
	return &usecase.CreateListingInput{
		AddressString: "12 King St W, Toronto",
		StartDate:     "2026-09-01",
		EndDate:       "2026-12-31",
		AskingPrice:   1450,
		NumBedrooms:   2,
		NumBathrooms:  1,
		PetFriendly:   true,
	}
}

func TestListingService_Create_Success(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	input := validCreateListingInput()

	var created *entity.Listing
	fx.listings.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Listing")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Listing)
		}).
		Return(7, nil)

	id, err := fx.service.Create(ctx, 1, input)
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	require.NotNil(t, created)
	assert.Equal(t, 1, created.UserID)
	assert.True(t, created.IsActive)
	assert.Equal(t, "12 King St W, Toronto", created.AddressString)
	assert.Equal(t, float64(1450), created.AskingPrice)
}

func TestListingService_Create_FailedUploadDropsPhotoOnly(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	input := validCreateListingInput()
	input.Photos = []usecase.PhotoUpload{
		{Filename: "front.jpg", Data: []byte{0x01}},
		{Filename: "kitchen.jpg", Data: []byte{0x02}},
	}

	fx.photos.EXPECT().Upload(ctx, []byte{0x01}, "front.jpg").
		Return(entity.Photo{URL: "https://cdn.example.com/front.jpg"}, nil)
	fx.photos.EXPECT().Upload(ctx, []byte{0x02}, "kitchen.jpg").
		Return(entity.Photo{}, errors.New("upstream 500"))

	var created *entity.Listing
	fx.listings.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Listing")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Listing)
		}).
		Return(8, nil)

	_, err := fx.service.Create(ctx, 1, input)
	require.NoError(t, err)

	require.NotNil(t, created)
	require.Len(t, created.Photos, 1)
	assert.Equal(t, "https://cdn.example.com/front.jpg", created.Photos[0].URL)
}

func TestListingService_Create_InvalidDates(t *testing.T) {
	fx := createTestListingService(t)

	input := validCreateListingInput()
	input.StartDate = "September 1st"

	_, err := fx.service.Create(context.Background(), 1, input)
	assert.Error(t, err)
}

func TestListingService_Create_ZeroPrice(t *testing.T) {
	fx := createTestListingService(t)

	input := validCreateListingInput()
	input.AskingPrice = 0

	_, err := fx.service.Create(context.Background(), 1, input)
	assert.Error(t, err)
}

func TestListingService_Get_NotFound(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	fx.listings.EXPECT().FindByID(ctx, 99).Return(nil, repository.ErrListingNotFound)

	_, err := fx.service.Get(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrListingNotFound)
}

func TestListingService_Update_AppliesPartialFields(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	existing := &entity.Listing{
		ID:          7,
		AskingPrice: 1450,
		StartDate:   "2026-09-01",
		EndDate:     "2026-12-31",
		Description: "Bright two bedroom",
	}
	fx.listings.EXPECT().FindByID(ctx, 7).Return(existing, nil)

	var updated *entity.Listing
	fx.listings.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Listing")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*entity.Listing)
		}).
		Return(nil)

	newPrice := 1300.0
	require.NoError(t, fx.service.Update(ctx, 7, &usecase.UpdateListingInput{
		AskingPrice: &newPrice,
	}))

	require.NotNil(t, updated)
	assert.Equal(t, 1300.0, updated.AskingPrice)
	assert.Equal(t, "2026-09-01", updated.StartDate)
	assert.Equal(t, "Bright two bedroom", updated.Description)
}

func TestListingService_Update_RemovesPhotos(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	existing := &entity.Listing{
		ID: 7,
		Photos: entity.PhotoList{
			{URL: "https://cdn.example.com/front.jpg"},
			{URL: "https://cdn.example.com/kitchen.jpg"},
		},
	}
	fx.listings.EXPECT().FindByID(ctx, 7).Return(existing, nil)
	fx.photos.EXPECT().Delete(ctx, []string{"https://cdn.example.com/kitchen.jpg"}).Return(nil)

	var updated *entity.Listing
	fx.listings.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Listing")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*entity.Listing)
		}).
		Return(nil)

	require.NoError(t, fx.service.Update(ctx, 7, &usecase.UpdateListingInput{
		RemovePhotoURLs: []string{"https://cdn.example.com/kitchen.jpg"},
	}))

	require.NotNil(t, updated)
	require.Len(t, updated.Photos, 1)
	assert.Equal(t, "https://cdn.example.com/front.jpg", updated.Photos[0].URL)
}

func TestListingService_Deactivate(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	fx.listings.EXPECT().SetActive(ctx, 7, false).Return(nil)

	require.NoError(t, fx.service.Deactivate(ctx, 7))
}

func TestListingService_AddressSuggestions(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	fx.locations.EXPECT().Autocomplete(ctx, "12 King").Return([]entity.AddressPrediction{
		{Description: "12 King St W, Toronto, ON", PlaceID: "abc123"},
	}, nil)

	predictions, err := fx.service.AddressSuggestions(ctx, "12 King")
	require.NoError(t, err)
	require.Len(t, predictions, 1)
	assert.Equal(t, "abc123", predictions[0].PlaceID)
}

func TestListingService_AddressSuggestions_EmptyQuery(t *testing.T) {
	fx := createTestListingService(t)

	predictions, err := fx.service.AddressSuggestions(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, predictions)
}
