// Package models defines the persistent entities of the bookmark service.
package models

import "time"

// User is an account holder. Hash stores the argon2id-encoded password and
// must never leave the server; transport-layer representations omit it.
type User struct {
	ID        int64
	Email     string
	Hash      string
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
