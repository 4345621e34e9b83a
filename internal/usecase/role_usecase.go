// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"subletswipe/internal/domain/entity"
)

// ActiveRoleUsecase is the single source of truth for which identity the user
// is acting as. One instance exists per process, provided at the application
// root; every screen reads and mutates role state only through it.
type ActiveRoleUsecase interface {
	// RefreshResources re-fetches the user's renter-profile id and listing
	// ids and re-derives the active role, unless the user has explicitly
	// chosen one. Safe to call repeatedly; a failed fetch leaves prior
	// state untouched, and a superseded in-flight refresh is discarded.
	RefreshResources(ctx context.Context) error

	// SetResourceID equips the given resource if it belongs to the active
	// role's permitted set. Returns false when the id was rejected; the
	// rejection is deliberately invisible to screens, which are allowed to
	// pass optimistic or stale ids.
	SetResourceID(id int) bool

	// SetRole atomically equips a role and resource, bypassing validation
	// against previously fetched lists. Used right after onboarding into a
	// brand-new role, before any refresh has seen the new id. Marks the
	// role as explicitly chosen.
	SetRole(role entity.ActiveRole)

	// SetIsRenter switches the active side without touching the resource
	// id; the next RefreshResources populates the appropriate id. Marks
	// the role as explicitly chosen.
	SetIsRenter(isRenter bool)

	// ActiveRole returns a snapshot of the equipped identity.
	ActiveRole() entity.ActiveRole

	// RenterProfileID returns the last-fetched renter profile id, if any.
	RenterProfileID() (int, bool)

	// ListingIDs returns the last-fetched listing ids.
	ListingIDs() []int
}
