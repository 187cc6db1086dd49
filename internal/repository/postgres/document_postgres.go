package postgres

import (
	"context"
	"database/sql"
	"time"

	"docvault/internal/model"
	"docvault/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, title, description, file_type, file_url, storage_path, file_size, uploader_id, access_level, upload_date`

func scanDocument(s interface {
	Scan(dest ...any) error
}) (*model.Document, error) {
	var d model.Document
	if err := s.Scan(
		&d.ID,
		&d.Title,
		&d.Description,
		&d.FileType,
		&d.FileURL,
		&d.StoragePath,
		&d.FileSize,
		&d.UploaderID,
		&d.AccessLevel,
		&d.UploadDate,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (id, title, description, file_type, file_url, storage_path, file_size, uploader_id, access_level, upload_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.Title,
		doc.Description,
		doc.FileType,
		doc.FileURL,
		doc.StoragePath,
		doc.FileSize,
		doc.UploaderID,
		doc.AccessLevel,
		doc.UploadDate,
	)
	return scanDocument(row)
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// ListByOwner returns the owner's documents sorted by upload date, newest first.
func (r *DocumentPostgres) ListByOwner(ctx context.Context, ownerID string) ([]model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE uploader_id = $1
		ORDER BY upload_date DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	return collectDocuments(rows)
}

// ListAll returns every document sorted by upload date, newest first.
func (r *DocumentPostgres) ListAll(ctx context.Context) ([]model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		ORDER BY upload_date DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	return collectDocuments(rows)
}

func collectDocuments(rows *sql.Rows) ([]model.Document, error) {
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a document by ID. It does not return an error if the row does not exist.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

// StatsByOwner aggregates totals, file-type distribution and the day-bucketed
// upload timeline for one owner. Read-only; three queries, no mutation.
func (r *DocumentPostgres) StatsByOwner(ctx context.Context, ownerID string, since time.Time) (*repository.OwnerStats, error) {
	stats := &repository.OwnerStats{
		FileTypes: make([]repository.FileTypeStat, 0),
		Timeline:  make([]repository.UploadBucket, 0),
	}

	const qTotals = `
		SELECT COUNT(*), COALESCE(SUM(file_size), 0)
		FROM documents
		WHERE uploader_id = $1
	`
	if err := r.db.QueryRowContext(ctx, qTotals, ownerID).Scan(&stats.TotalDocuments, &stats.TotalSize); err != nil {
		return nil, err
	}

	const qTypes = `
		SELECT file_type, COUNT(*), COALESCE(SUM(file_size), 0)
		FROM documents
		WHERE uploader_id = $1 AND file_type <> ''
		GROUP BY file_type
		ORDER BY COUNT(*) DESC, file_type ASC
	`
	rows, err := r.db.QueryContext(ctx, qTypes, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var ft repository.FileTypeStat
		if err := rows.Scan(&ft.FileType, &ft.Count, &ft.TotalSize); err != nil {
			return nil, err
		}
		stats.FileTypes = append(stats.FileTypes, ft)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const qTimeline = `
		SELECT date_trunc('day', upload_date) AS day, COUNT(*)
		FROM documents
		WHERE uploader_id = $1 AND upload_date >= $2
		GROUP BY day
		ORDER BY day ASC
	`
	tRows, err := r.db.QueryContext(ctx, qTimeline, ownerID, since)
	if err != nil {
		return nil, err
	}
	defer tRows.Close()
	for tRows.Next() {
		var b repository.UploadBucket
		if err := tRows.Scan(&b.Day, &b.Count); err != nil {
			return nil, err
		}
		stats.Timeline = append(stats.Timeline, b)
	}
	if err := tRows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
