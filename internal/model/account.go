package model

// Account is one registered user's persisted profile.
// JSON field names match the portal's original storage schema.
type Account struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Email    string `json:"email"` // stored lower-cased
	Phone    string `json:"phone"` // digits only, at most 11
	Password string `json:"password"`
}

// SessionMarker records who is currently signed in.
// A single marker exists at a time; each successful sign-in overwrites it.
type SessionMarker struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}
