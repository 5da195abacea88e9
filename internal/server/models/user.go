// Package models holds the server-side persistent entities.
package models

import "time"

// User is the sole persistent entity. ID is a server-generated UUID and never
// changes; Username and Email are globally unique; PasswordHash is a bcrypt
// hash and is never exposed outside the storage and credential-check paths.
// LastLogin is nil until the first successful login.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	LastLogin    *time.Time
}
