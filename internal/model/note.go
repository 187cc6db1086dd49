package model

import "time"

// Note is a freeform note owned by exactly one user. Notes are never visible
// to other users, administrators included.
type Note struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Field limits enforced before any persistence attempt.
const (
	NoteTitleMaxLen       = 200
	NoteDescriptionMaxLen = 5000
)
