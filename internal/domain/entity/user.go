// Package entity contains the core business objects of the blog,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can log in and own blogs.
type User struct {
	ID           uuid.UUID // Application-generated UUIDv7.
	Name         string    // Display name.
	Email        string    // Unique login identifier and token subject.
	PasswordHash string    // bcrypt hash. Never the plaintext, never sent to clients.
	Blogs        []*Blog   // Blogs owned by this user. Only populated by reads that load them.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
