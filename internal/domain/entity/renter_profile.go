package entity

// RenterProfile holds the renter-side preferences of a user. At most one
// exists per user, and only once the renter wizard has been completed.
type RenterProfile struct {
	ID            int     `json:"id"`
	UserID        int     `json:"user_id"`
	Budget        float64 `json:"budget"`
	AddressString string  `json:"address_string,omitempty"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	NumBedrooms   int     `json:"num_bedrooms"`
	NumBathrooms  int     `json:"num_bathrooms"`
	HasPet        bool    `json:"has_pet"`
	Bio           string  `json:"bio,omitempty"`
}
