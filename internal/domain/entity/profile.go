// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Profile is the per-user profile document stored under users/{uid}/profile.
// Field names mirror the persisted document keys.
type Profile struct {
	Email         string             `json:"email"`
	Name          string             `json:"name"`
	LastLogin     int64              `json:"last_login"`  // Epoch milliseconds of the most recent login.
	LoginCount    int                `json:"login_count"` // Number of logins, starts at 1 on account creation.
	Photo         string             `json:"photo"`
	PhoneNumber   *string            `json:"phone_number,omitempty"`
	Addresses     map[string]Address `json:"addresses,omitempty"`
	New           bool               `json:"new"` // True until explicitly cleared after onboarding.
	ContactNumber float64            `json:"contact_number"`
	StatusType    *string            `json:"status_type,omitempty"`
	Age           float64            `json:"age"`
	Walk          WalkStats          `json:"walk"`
}

// WalkStats holds the walking-related bookkeeping of a profile.
type WalkStats struct {
	Active    bool      `json:"active"`
	Rating    float64   `json:"rating"` // Cumulative; only ever incremented by callers.
	Completed int       `json:"completed"`
	Balance   float64   `json:"balance"` // Never allowed below zero on decrease.
	Price     WalkPrice `json:"price"`
}

// WalkPrice is the advertised walk price range. Min must not exceed Max.
type WalkPrice struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ProfileUpdateWhitelist lists the profile keys a caller may set through
// UpdateProfile. Anything not on the list is silently dropped, not rejected.
var ProfileUpdateWhitelist = []string{"email", "name", "new", "age", "contact_number", "status_type"}
