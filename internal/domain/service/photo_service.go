// Package service defines interfaces for external collaborators that are not
// data repositories.
package service

import (
	"context"

	"subletswipe/internal/domain/entity"
)

// PhotoService uploads listing photos to the third-party image host and
// removes them again. Both directions are best-effort: a failed upload drops
// the photo, never the listing that carries it.
type PhotoService interface {
	// Upload pushes one image and returns its hosted representation.
	Upload(ctx context.Context, data []byte, filename string) (entity.Photo, error)

	// Delete removes previously uploaded photos by URL.
	Delete(ctx context.Context, urls []string) error
}
