// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the authenticated identity, created at signup and persisted on the
// device after sign-in. The matching core only ever reads its ID; the rest is
// display data for the account screens.
type User struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	ProfilePhoto string `json:"profile_photo,omitempty"`
}

// DisplayName returns the user's name as shown in the account screens.
func (u User) DisplayName() string {
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}
