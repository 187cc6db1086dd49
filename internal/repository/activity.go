package repository

import (
	"context"

	"docvault/internal/model"
)

// ActivityRepository is the append-only audit trail. Nothing updates or
// deletes rows; reads join document title/type for the dashboard.
type ActivityRepository interface {
	// Append records one action. Callers treat failures as non-fatal.
	Append(ctx context.Context, entry *model.RecentActivity) error

	// ListRecentByUser returns the user's latest entries, newest first,
	// joined with the document fields still present.
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]model.ActivityEntry, error)
}
