package api

import (
	"context"
	"log/slog"
	"net/url"

	"subletswipe/internal/domain/entity"
	"subletswipe/internal/domain/repository"
)

type locationRepository struct {
	client *Client
	logger *slog.Logger
}

// NewLocationRepository creates the address autocomplete binding.
func NewLocationRepository(client *Client, logger *slog.Logger) repository.LocationRepository {
	return &locationRepository{client: client, logger: logger}
}

// Autocomplete returns address predictions for a partial input.
func (r *locationRepository) Autocomplete(ctx context.Context, input string) ([]entity.AddressPrediction, error) {
	var out struct {
		Predictions []entity.AddressPrediction `json:"predictions"`
	}
	if err := r.client.Get(ctx, "/locations/"+url.PathEscape(input), &out); err != nil {
		return nil, err
	}

	return out.Predictions, nil
}
