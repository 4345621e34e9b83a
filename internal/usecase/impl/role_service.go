// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"subletswipe/internal/domain/entity"
	"subletswipe/internal/domain/repository"
	"subletswipe/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// roleService implements the ActiveRoleUsecase interface. It is the one
// process-wide mutable piece of state in the client; everything goes through
// the mutex, and a generation counter keeps a slow RefreshResources response
// from clobbering a fresher one.
type roleService struct {
	resources repository.ResourceRepository
	sessions  repository.SessionStore
	logger    *slog.Logger

	mu               sync.Mutex
	isRenter         bool
	resourceID       int
	renterProfileID  int
	hasRenterProfile bool
	listingIDs       []int
	explicitRole     bool
	generation       uint64
}

// NewActiveRoleService is the constructor for roleService.
func NewActiveRoleService(
	resources repository.ResourceRepository,
	sessions repository.SessionStore,
	logger *slog.Logger,
) usecase.ActiveRoleUsecase {
	return &roleService{
		resources: resources,
		sessions:  sessions,
		logger:    logger,
		// Renter is the default side until resources say otherwise.
		isRenter: true,
	}
}

// RefreshResources re-fetches the user's resources and re-derives the active
// role. A failed fetch leaves prior state untouched; a response superseded by
// a newer refresh is discarded.
func (srv *roleService) RefreshResources(ctx context.Context) error {
	user, err := srv.sessions.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "load signed-in user")
	}

	srv.mu.Lock()
	srv.generation++
	gen := srv.generation
	srv.mu.Unlock()

	var (
		profileID  int
		hasProfile bool
		listingIDs []int
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		id, found, err := srv.resources.FetchRenterProfileID(groupCtx, user.ID)
		if err != nil {
			return errors.Wrap(err, "fetch renter profile id")
		}
		profileID, hasProfile = id, found

		return nil
	})
	group.Go(func() error {
		ids, err := srv.resources.FetchListingIDs(groupCtx, user.ID)
		if err != nil {
			return errors.Wrap(err, "fetch listing ids")
		}
		listingIDs = ids

		return nil
	})

	if err := group.Wait(); err != nil {
		srv.logger.Warn("resource refresh failed, keeping prior role state",
			slog.Int("userID", user.ID), slog.Any("error", err))

		return err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if gen != srv.generation {
		srv.logger.Debug("discarding superseded resource refresh",
			slog.Uint64("generation", gen))

		return nil
	}

	srv.renterProfileID, srv.hasRenterProfile = profileID, hasProfile
	srv.listingIDs = listingIDs

	if srv.explicitRole {
		srv.revalidateLocked()
	} else {
		srv.autoDetectLocked()
	}

	return nil
}

// autoDetectLocked derives the role from the fetched resources. Renter wins
// ties; a user with nothing yet stays a renter with no resource equipped.
func (srv *roleService) autoDetectLocked() {
	switch {
	case srv.hasRenterProfile:
		srv.isRenter = true
		srv.resourceID = srv.renterProfileID
	case len(srv.listingIDs) > 0:
		srv.isRenter = false
		srv.resourceID = srv.listingIDs[0]
	default:
		srv.isRenter = true
		srv.resourceID = 0
	}
}

// revalidateLocked refreshes the resource id for the explicitly chosen side
// without touching isRenter.
func (srv *roleService) revalidateLocked() {
	if srv.isRenter {
		if srv.hasRenterProfile {
			srv.resourceID = srv.renterProfileID
		} else {
			srv.resourceID = 0
		}

		return
	}

	if slices.Contains(srv.listingIDs, srv.resourceID) {
		return
	}
	if len(srv.listingIDs) > 0 {
		srv.resourceID = srv.listingIDs[0]
	} else {
		srv.resourceID = 0
	}
}

// SetResourceID equips the given resource if it belongs to the active role's
// permitted set. Screens are allowed to pass optimistic or stale ids, so an
// invalid id is discarded rather than applied.
func (srv *roleService) SetResourceID(id int) bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.isRenter {
		if srv.hasRenterProfile && id == srv.renterProfileID {
			srv.resourceID = id

			return true
		}
	} else if slices.Contains(srv.listingIDs, id) {
		srv.resourceID = id

		return true
	}

	srv.logger.Warn("rejected resource id for active role",
		slog.Int("resourceID", id),
		slog.String("role", srv.roleLocked().Role().String()))

	return false
}

// SetRole atomically equips a role and resource, bypassing validation against
// previously fetched lists. The brand-new id may not be visible to a resource
// fetch yet.
func (srv *roleService) SetRole(role entity.ActiveRole) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.isRenter = role.IsRenter
	srv.resourceID = role.ResourceID
	srv.explicitRole = true
}

// SetIsRenter switches the active side without touching the resource id.
func (srv *roleService) SetIsRenter(isRenter bool) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.isRenter = isRenter
	srv.explicitRole = true
}

// ActiveRole returns a snapshot of the equipped identity.
func (srv *roleService) ActiveRole() entity.ActiveRole {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.roleLocked()
}

func (srv *roleService) roleLocked() entity.ActiveRole {
	return entity.ActiveRole{
		IsRenter:   srv.isRenter,
		ResourceID: srv.resourceID,
	}
}

// RenterProfileID returns the last-fetched renter profile id, if any.
func (srv *roleService) RenterProfileID() (int, bool) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.renterProfileID, srv.hasRenterProfile
}

// ListingIDs returns the last-fetched listing ids.
func (srv *roleService) ListingIDs() []int {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return slices.Clone(srv.listingIDs)
}
