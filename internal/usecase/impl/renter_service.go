package impl

import (
	"context"
	"log/slog"

	"subletswipe/internal/domain/entity"
	"subletswipe/internal/domain/repository"
	"subletswipe/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// renterService implements the RenterUsecase interface.
type renterService struct {
	renters  repository.RenterRepository
	validate *validator.Validate
	logger   *slog.Logger
}

// NewRenterService is the constructor for renterService.
func NewRenterService(renters repository.RenterRepository, logger *slog.Logger) usecase.RenterUsecase {
	return &renterService{
		renters:  renters,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// Create validates the wizard input and posts the profile.
func (srv *renterService) Create(ctx context.Context, userID int, input *usecase.CreateRenterProfileInput) (int, error) {
	if err := srv.validate.Struct(input); err != nil {
		return 0, errors.Wrap(err, "validate renter profile input")
	}

	profile := &entity.RenterProfile{
		UserID:        userID,
		Budget:        input.Budget,
		AddressString: input.AddressString,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		NumBedrooms:   input.NumBedrooms,
		NumBathrooms:  input.NumBathrooms,
		HasPet:        input.HasPet,
		Bio:           input.Bio,
	}

	id, err := srv.renters.Create(ctx, profile)
	if err != nil {
		return 0, errors.Wrap(err, "create renter profile")
	}
	srv.logger.Info("renter profile created", slog.Int("profileID", id), slog.Int("userID", userID))

	return id, nil
}

// Get retrieves one renter profile.
func (srv *renterService) Get(ctx context.Context, id int) (*entity.RenterProfile, error) {
	profile, err := srv.renters.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "find renter profile")
	}

	return profile, nil
}

// Update validates and applies a partial update.
func (srv *renterService) Update(ctx context.Context, id int, input *usecase.UpdateRenterProfileInput) error {
	if err := srv.validate.Struct(input); err != nil {
		return errors.Wrap(err, "validate renter profile update")
	}

	profile, err := srv.renters.FindByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "find renter profile")
	}

	applyRenterUpdates(profile, input)

	if err := srv.renters.Update(ctx, profile); err != nil {
		return errors.Wrap(err, "update renter profile")
	}

	return nil
}

func applyRenterUpdates(profile *entity.RenterProfile, input *usecase.UpdateRenterProfileInput) {
	if input.Budget != nil {
		profile.Budget = *input.Budget
	}
	if input.StartDate != nil {
		profile.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		profile.EndDate = *input.EndDate
	}
	if input.NumBedrooms != nil {
		profile.NumBedrooms = *input.NumBedrooms
	}
	if input.NumBathrooms != nil {
		profile.NumBathrooms = *input.NumBathrooms
	}
	if input.HasPet != nil {
		profile.HasPet = *input.HasPet
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
}
