package entity

import (
	"time"

	"github.com/google/uuid"
)

// Blog is a single post. Its owner is fixed when it is created.
type Blog struct {
	ID        uuid.UUID
	Title     string
	Body      string
	UserID    uuid.UUID // Owning user.
	Creator   *User     // Owning user, loaded on reads.
	CreatedAt time.Time
	UpdatedAt time.Time
}
