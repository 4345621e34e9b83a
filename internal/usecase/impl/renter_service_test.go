package impl

import (
	"context"
	"log/slog"
	"testing"

	"subletswipe/internal/domain/entity"
	"subletswipe/internal/domain/repository"
	mockRepo "subletswipe/internal/mocks/repository"
	"subletswipe/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRenterService(t *testing.T) (usecase.RenterUsecase, *mockRepo.MockRenterRepository) {
	t.Helper()

	renters := mockRepo.NewMockRenterRepository(t)
	service := NewRenterService(renters, slog.New(slog.DiscardHandler))

	return service, renters
}

func validCreateRenterInput() *usecase.CreateRenterProfileInput {
	return &usecase.CreateRenterProfileInput{
		Budget:        1200,
		AddressString: "Toronto, ON",
		StartDate:     "2026-09-01",
		EndDate:       "2026-12-31",
		NumBedrooms:   1,
		NumBathrooms:  1,
		HasPet:        true,
		Bio:           "Grad student with a quiet cat",
	}
}

func TestRenterService_Create_Success(t *testing.T) {
	service, renters := createTestRenterService(t)

	ctx := context.Background()

	var created *entity.RenterProfile
	renters.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RenterProfile")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.RenterProfile)
		}).
		Return(42, nil)

	id, err := service.Create(ctx, 1, validCreateRenterInput())
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	require.NotNil(t, created)
	assert.Equal(t, 1, created.UserID)
	assert.Equal(t, float64(1200), created.Budget)
	assert.True(t, created.HasPet)
}

func TestRenterService_Create_MissingBudget(t *testing.T) {
	service, _ := createTestRenterService(t)

	input := validCreateRenterInput()
	input.Budget = 0

	_, err := service.Create(context.Background(), 1, input)
	assert.Error(t, err)
}

func TestRenterService_Get_NotFound(t *testing.T) {
	service, renters := createTestRenterService(t)

	ctx := context.Background()
	renters.EXPECT().FindByID(ctx, 99).Return(nil, repository.ErrRenterProfileNotFound)

	_, err := service.Get(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrRenterProfileNotFound)
}

func TestRenterService_Update_AppliesPartialFields(t *testing.T) {
	service, renters := createTestRenterService(t)

	ctx := context.Background()
	existing := &entity.RenterProfile{
		ID:     42,
		Budget: 1200,
		Bio:    "Grad student with a quiet cat",
	}
	renters.EXPECT().FindByID(ctx, 42).Return(existing, nil)

	var updated *entity.RenterProfile
	renters.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.RenterProfile")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*entity.RenterProfile)
		}).
		Return(nil)

	newBudget := 1400.0
	require.NoError(t, service.Update(ctx, 42, &usecase.UpdateRenterProfileInput{
		Budget: &newBudget,
	}))

	require.NotNil(t, updated)
	assert.Equal(t, 1400.0, updated.Budget)
	assert.Equal(t, "Grad student with a quiet cat", updated.Bio)
}
