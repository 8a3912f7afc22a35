package models

import "time"

// Bookmark is a saved link owned by a single user. UserID references an
// existing users row; every read-by-id, update, or delete must verify the
// owner before proceeding.
type Bookmark struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Link        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
