package postgres

import (
	"context"
	"database/sql"

	"docvault/internal/model"
	"docvault/internal/repository"
)

// ActivityPostgres is a PostgreSQL implementation of repository.ActivityRepository.
// Insert-only: the table has no update or delete path in this codebase.
type ActivityPostgres struct {
	db *sql.DB
}

// NewActivityPostgres creates a new ActivityPostgres repository.
func NewActivityPostgres(db *sql.DB) *ActivityPostgres {
	return &ActivityPostgres{db: db}
}

var _ repository.ActivityRepository = (*ActivityPostgres)(nil)

// Append records a single action.
func (r *ActivityPostgres) Append(ctx context.Context, entry *model.RecentActivity) error {
	const q = `
		INSERT INTO recent_activity (id, user_id, document_id, action, ts)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, q,
		entry.ID,
		entry.UserID,
		entry.DocumentID,
		entry.Action,
		entry.Timestamp,
	)
	return err
}

// ListRecentByUser returns the user's latest entries joined with document
// title and file type. The join is LEFT so entries survive document deletion.
func (r *ActivityPostgres) ListRecentByUser(ctx context.Context, userID string, limit int) ([]model.ActivityEntry, error) {
	const q = `
		SELECT a.id, a.user_id, a.document_id, a.action, a.ts,
		       COALESCE(d.title, ''), COALESCE(d.file_type, '')
		FROM recent_activity a
		LEFT JOIN documents d ON d.id = a.document_id
		WHERE a.user_id = $1
		ORDER BY a.ts DESC, a.id DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, q, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ActivityEntry, 0)
	for rows.Next() {
		var e model.ActivityEntry
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.DocumentID,
			&e.Action,
			&e.Timestamp,
			&e.DocumentTitle,
			&e.DocumentFileType,
		); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
