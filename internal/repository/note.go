package repository

import (
	"context"

	"docvault/internal/model"
)

// NoteRepository defines data access for notes. Every query is scoped by the
// owning user at the SQL level; there is no unscoped variant on purpose.
type NoteRepository interface {
	// Create inserts a new note and returns the stored row.
	Create(ctx context.Context, note *model.Note) (*model.Note, error)

	// ListByUser returns the user's notes, newest first.
	ListByUser(ctx context.Context, userID string) ([]model.Note, error)

	// FindByIDAndUser returns the note only when it belongs to the user;
	// anything else surfaces as sql.ErrNoRows.
	FindByIDAndUser(ctx context.Context, id, userID string) (*model.Note, error)

	// Update rewrites title, description and updated_at for the user's note
	// and returns the stored row. sql.ErrNoRows when no owned row matches.
	Update(ctx context.Context, note *model.Note) (*model.Note, error)

	// Delete removes the user's note. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id, userID string) error

	// CountByUser returns how many notes the user owns.
	CountByUser(ctx context.Context, userID string) (int, error)
}
