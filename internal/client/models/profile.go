// Package models contains client-side data structures.
package models

// Profile is the user profile as presented to the CLI. Timestamps keep the
// RFC 3339 form they arrive in; LastLogin is empty before the first login.
type Profile struct {
	UserID    string
	Username  string
	Email     string
	CreatedAt string
	LastLogin string
}
