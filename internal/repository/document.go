package repository

import (
	"context"
	"time"

	"docvault/internal/model"
)

// DocumentRepository defines data access for document metadata using SQL
// queries only. No business logic here — ownership decisions happen in the
// service layer; these methods just scope or not.
type DocumentRepository interface {
	// Create inserts a new document record and returns the stored row.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID. Missing rows surface as sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// ListByOwner returns the owner's documents, newest upload first.
	ListByOwner(ctx context.Context, ownerID string) ([]model.Document, error)

	// ListAll returns every document, newest upload first. Admin-only callers.
	ListAll(ctx context.Context) ([]model.Document, error)

	// Delete removes a document by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error

	// StatsByOwner aggregates the owner's documents: totals, per-file-type
	// distribution, and day-bucketed upload counts since the given time.
	StatsByOwner(ctx context.Context, ownerID string, since time.Time) (*OwnerStats, error)
}

// FileTypeStat is one row of the per-extension distribution.
type FileTypeStat struct {
	FileType  string `json:"file_type"`
	Count     int    `json:"count"`
	TotalSize int64  `json:"total_size"`
}

// UploadBucket is one day of the upload timeline.
type UploadBucket struct {
	Day   time.Time `json:"day"`
	Count int       `json:"count"`
}

// OwnerStats is the aggregation result for one owner.
type OwnerStats struct {
	TotalDocuments int            `json:"total_documents"`
	TotalSize      int64          `json:"total_size"`
	FileTypes      []FileTypeStat `json:"file_types"`
	Timeline       []UploadBucket `json:"timeline"`
}
