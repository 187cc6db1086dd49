package model

import "time"

// RecentActivity is an append-only audit record of a user action on a
// document. Rows are never updated or deleted by any request flow.
type RecentActivity struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	DocumentID string    `json:"document_id"`
	Action     string    `json:"action"`
	Timestamp  time.Time `json:"timestamp"`
}

const (
	ActionUpload   = "upload"
	ActionDelete   = "delete"
	ActionDownload = "download"
	ActionView     = "view"
)

// ActivityEntry is a RecentActivity joined with the document fields the
// dashboard renders. Document fields are empty when the document has since
// been deleted.
type ActivityEntry struct {
	RecentActivity
	DocumentTitle    string `json:"document_title"`
	DocumentFileType string `json:"document_file_type"`
}
