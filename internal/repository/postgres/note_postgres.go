package postgres

import (
	"context"
	"database/sql"

	"docvault/internal/model"
	"docvault/internal/repository"
)

// NotePostgres is a PostgreSQL implementation of repository.NoteRepository.
// Every statement filters on user_id; ownership is enforced by the query, not
// checked after fetch.
type NotePostgres struct {
	db *sql.DB
}

// NewNotePostgres creates a new NotePostgres repository.
func NewNotePostgres(db *sql.DB) *NotePostgres {
	return &NotePostgres{db: db}
}

var _ repository.NoteRepository = (*NotePostgres)(nil)

const noteColumns = `id, title, description, user_id, username, created_at, updated_at`

func scanNote(s interface {
	Scan(dest ...any) error
}) (*model.Note, error) {
	var n model.Note
	if err := s.Scan(
		&n.ID,
		&n.Title,
		&n.Description,
		&n.UserID,
		&n.Username,
		&n.CreatedAt,
		&n.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &n, nil
}

// Create inserts a new note row and returns the stored record.
func (r *NotePostgres) Create(ctx context.Context, note *model.Note) (*model.Note, error) {
	const q = `
		INSERT INTO notes (id, title, description, user_id, username, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + noteColumns
	row := r.db.QueryRowContext(ctx, q,
		note.ID,
		note.Title,
		note.Description,
		note.UserID,
		note.Username,
		note.CreatedAt,
		note.UpdatedAt,
	)
	return scanNote(row)
}

// ListByUser returns the user's notes, newest first.
func (r *NotePostgres) ListByUser(ctx context.Context, userID string) ([]model.Note, error) {
	const q = `
		SELECT ` + noteColumns + `
		FROM notes
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByIDAndUser returns the note only when owned by the user.
func (r *NotePostgres) FindByIDAndUser(ctx context.Context, id, userID string) (*model.Note, error) {
	const q = `SELECT ` + noteColumns + ` FROM notes WHERE id = $1 AND user_id = $2`
	return scanNote(r.db.QueryRowContext(ctx, q, id, userID))
}

// Update rewrites the mutable fields of the user's note.
func (r *NotePostgres) Update(ctx context.Context, note *model.Note) (*model.Note, error) {
	const q = `
		UPDATE notes
		SET title = $1, description = $2, updated_at = $3
		WHERE id = $4 AND user_id = $5
		RETURNING ` + noteColumns
	row := r.db.QueryRowContext(ctx, q,
		note.Title,
		note.Description,
		note.UpdatedAt,
		note.ID,
		note.UserID,
	)
	return scanNote(row)
}

// Delete removes the user's note. It does not return an error if the row does not exist.
func (r *NotePostgres) Delete(ctx context.Context, id, userID string) error {
	const q = `DELETE FROM notes WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, q, id, userID)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

// CountByUser returns how many notes the user owns.
func (r *NotePostgres) CountByUser(ctx context.Context, userID string) (int, error) {
	const q = `SELECT COUNT(*) FROM notes WHERE user_id = $1`
	var count int
	if err := r.db.QueryRowContext(ctx, q, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
