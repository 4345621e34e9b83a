package entity

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Photo is a single hosted image attached to a listing.
type Photo struct {
	URL   string `json:"url"`
	Label string `json:"label,omitempty"`
}

// PhotoList normalizes the API's loose photo representation. The photos field
// arrives either as a JSON array or as a JSON-encoded string containing an
// array; both decode to the same slice so nothing downstream branches on
// shape.
type PhotoList []Photo

// UnmarshalJSON implements json.Unmarshaler.
func (p *PhotoList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*p = nil

		return nil
	}

	// String form: the payload is an array encoded once more as a string.
	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" || raw == "null" {
			*p = nil

			return nil
		}
		data = []byte(raw)
	}

	var photos []Photo
	if err := json.Unmarshal(data, &photos); err != nil {
		return err
	}
	*p = photos

	return nil
}

// FirstURL returns the URL of the first photo, or nil when there are none.
func (p PhotoList) FirstURL() *string {
	if len(p) == 0 {
		return nil
	}

	return &p[0].URL
}

// Listing is a sublet offer owned by a lister. A user may own several
// listings simultaneously; inactive ones are hidden from candidate queues.
type Listing struct {
	ID            int       `json:"id"`
	UserID        int       `json:"user_id"`
	IsActive      bool      `json:"is_active"`
	AddressString string    `json:"address_string"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	AskingPrice   float64   `json:"asking_price"`
	NumBedrooms   int       `json:"num_bedrooms"`
	NumBathrooms  int       `json:"num_bathrooms"`
	PetFriendly   bool      `json:"pet_friendly"`
	UtilitiesIncl bool      `json:"utilities_incl"`
	BuildingType  string    `json:"building_type,omitempty"`
	Description   string    `json:"description,omitempty"`
	Amenities     []string  `json:"amenities,omitempty"`
	Photos        PhotoList `json:"photos,omitempty"`
}

// AddressPrediction is one autocomplete suggestion from the address lookup.
type AddressPrediction struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id"`
}
