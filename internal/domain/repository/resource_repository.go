// Package repository defines the interfaces for remote and on-device data
// access. These interfaces act as a contract between the domain/application
// layers and the infrastructure layer; the remote API is a collaborator the
// application only ever reaches through them.
package repository

import (
	"context"
)

// ResourceRepository resolves which resources (renter profile, listings) a
// user currently owns on the server.
type ResourceRepository interface {
	// FetchRenterProfileID returns the user's renter profile id. found is
	// false when the user has not completed the renter wizard yet.
	FetchRenterProfileID(ctx context.Context, userID int) (id int, found bool, err error)

	// FetchListingIDs returns the ids of every listing the user owns,
	// oldest first. An empty slice means the user has no listings.
	FetchListingIDs(ctx context.Context, userID int) ([]int, error)
}
