package impl

import (
	"context"
	"log/slog"

	"subletswipe/internal/domain/entity"
	"subletswipe/internal/domain/repository"
	"subletswipe/internal/usecase"

	"github.com/pkg/errors"
)

// matchesService implements the MatchesUsecase interface.
type matchesService struct {
	matches  repository.MatchRepository
	listings repository.ListingRepository
	renters  repository.RenterRepository
	logger   *slog.Logger
}

// NewMatchesService is the constructor for matchesService.
func NewMatchesService(
	matches repository.MatchRepository,
	listings repository.ListingRepository,
	renters repository.RenterRepository,
	logger *slog.Logger,
) usecase.MatchesUsecase {
	return &matchesService{
		matches:  matches,
		listings: listings,
		renters:  renters,
		logger:   logger,
	}
}

// MutualMatches fetches the mutual-match ids for the role and hydrates each
// into a display candidate. An id whose document can no longer be fetched is
// skipped, not fatal.
func (srv *matchesService) MutualMatches(ctx context.Context, role entity.ActiveRole) ([]entity.MatchCandidate, error) {
	if !role.HasResource() {
		return nil, ErrNoActiveResource
	}

	if role.IsRenter {
		return srv.renterMatches(ctx, role.ResourceID)
	}

	return srv.listerMatches(ctx, role.ResourceID)
}

func (srv *matchesService) renterMatches(ctx context.Context, renterProfileID int) ([]entity.MatchCandidate, error) {
	ids, err := srv.matches.MutualListingIDs(ctx, renterProfileID)
	if err != nil {
		return nil, errors.Wrap(err, "fetch mutual listing ids")
	}

	candidates := make([]entity.MatchCandidate, 0, len(ids))
	for _, id := range ids {
		listing, err := srv.listings.FindByID(ctx, id)
		if err != nil {
			srv.logger.Warn("skipping unfetchable matched listing",
				slog.Int("listingID", id), slog.Any("error", err))

			continue
		}

		candidate := entity.MatchCandidate{
			ID:            listing.ID,
			AddressString: listing.AddressString,
			AskingPrice:   listing.AskingPrice,
			StartDate:     listing.StartDate,
			EndDate:       listing.EndDate,
			NumBedrooms:   listing.NumBedrooms,
			NumBathrooms:  listing.NumBathrooms,
			PetFriendly:   listing.PetFriendly,
			UtilitiesIncl: listing.UtilitiesIncl,
			Description:   listing.Description,
			Photos:        listing.Photos,
		}
		candidate.NormalizePhotos()
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

func (srv *matchesService) listerMatches(ctx context.Context, listingID int) ([]entity.MatchCandidate, error) {
	ids, err := srv.matches.MutualRenterIDs(ctx, listingID)
	if err != nil {
		return nil, errors.Wrap(err, "fetch mutual renter ids")
	}

	candidates := make([]entity.MatchCandidate, 0, len(ids))
	for _, id := range ids {
		profile, err := srv.renters.FindByID(ctx, id)
		if err != nil {
			srv.logger.Warn("skipping unfetchable matched renter",
				slog.Int("renterProfileID", id), slog.Any("error", err))

			continue
		}

		candidates = append(candidates, entity.MatchCandidate{
			RenterID:     profile.ID,
			Budget:       profile.Budget,
			StartDate:    profile.StartDate,
			EndDate:      profile.EndDate,
			NumBedrooms:  profile.NumBedrooms,
			NumBathrooms: profile.NumBathrooms,
			HasPet:       profile.HasPet,
			Bio:          profile.Bio,
		})
	}

	return candidates, nil
}
