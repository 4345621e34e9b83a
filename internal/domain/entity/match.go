package entity

// MatchCandidate is a transient projection of either a Listing (when the
// viewer is a renter) or a RenterProfile (when the viewer is a lister),
// enriched with poster identity fields. It lives only inside one swipe
// session's queue and is never persisted.
type MatchCandidate struct {
	// Listing-side fields, populated when the viewer is a renter.
	ID            int       `json:"id,omitempty"`
	AddressString string    `json:"address_string,omitempty"`
	AskingPrice   float64   `json:"asking_price,omitempty"`
	StartDate     string    `json:"start_date,omitempty"`
	EndDate       string    `json:"end_date,omitempty"`
	NumBedrooms   int       `json:"num_bedrooms,omitempty"`
	NumBathrooms  int       `json:"num_bathrooms,omitempty"`
	PetFriendly   bool      `json:"pet_friendly,omitempty"`
	UtilitiesIncl bool      `json:"utilities_incl,omitempty"`
	Description   string    `json:"description,omitempty"`
	LandlordName  string    `json:"landlord_name,omitempty"`
	Photos        PhotoList `json:"photos,omitempty"`
	PhotoURL      *string   `json:"photo_url,omitempty"`

	// Renter-side fields, populated when the viewer is a lister.
	RenterID  int     `json:"renter_id,omitempty"`
	FirstName string  `json:"first_name,omitempty"`
	Budget    float64 `json:"budget,omitempty"`
	HasPet    bool    `json:"has_pet,omitempty"`
	Bio       string  `json:"bio,omitempty"`
}

// TargetID resolves the id a swipe on this candidate should be recorded
// against: the listing id for a renter viewer, the renter profile id for a
// lister viewer. Zero means the candidate is malformed for this role.
func (c MatchCandidate) TargetID(viewerIsRenter bool) int {
	if viewerIsRenter {
		return c.ID
	}

	return c.RenterID
}

// CounterpartName resolves the other party's display name for the match
// celebration, with a generic fallback when the field is missing.
func (c MatchCandidate) CounterpartName(viewerIsRenter bool) string {
	if viewerIsRenter {
		if c.LandlordName != "" {
			return c.LandlordName
		}

		return "a landlord"
	}

	if c.FirstName != "" {
		return c.FirstName
	}

	return "a renter"
}

// NormalizePhotos hoists the first photo's URL into the flat PhotoURL field
// used by card rendering. Candidates with no photos end up with a nil URL.
func (c *MatchCandidate) NormalizePhotos() {
	c.PhotoURL = c.Photos.FirstURL()
}

// SwipeDecision is an action, not a stored entity: one accept/reject gesture
// on a single candidate, submitted once and never retried.
type SwipeDecision struct {
	TargetID int  `json:"target_id"`
	IsRight  bool `json:"is_right"`
}

// MatchResult is the synchronous outcome of a swipe submission.
type MatchResult struct {
	Matched bool `json:"match"`
}
