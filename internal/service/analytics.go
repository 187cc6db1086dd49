package service

import (
	"context"
	"time"

	"docvault/internal/access"
	"docvault/internal/model"
	"docvault/internal/repository"
)

// UserStats is the aggregate the data-usage view renders.
type UserStats struct {
	TotalDocuments int                       `json:"total_documents"`
	TotalStorage   int64                     `json:"total_storage"`
	FileTypes      []repository.FileTypeStat `json:"file_types"`
	UploadTimeline []repository.UploadBucket `json:"upload_timeline"`
	RecentActivity []model.ActivityEntry     `json:"recent_activity"`
}

// Trailing window for the upload timeline and number of activity entries
// shown on the dashboard.
const (
	statsTimelineDays   = 30
	recentActivityLimit = 10
)

// AnalyticsService serves the read-only usage views. Everything is scoped to
// the requesting user; no mutation, no side effects beyond the queries.
type AnalyticsService interface {
	UserStats(ctx context.Context, requester access.Identity) (*UserStats, error)
	Recents(ctx context.Context, requester access.Identity) ([]model.ActivityEntry, error)
}

type analyticsService struct {
	docs     repository.DocumentRepository
	activity repository.ActivityRepository
}

// NewAnalyticsService constructs a new AnalyticsService.
func NewAnalyticsService(docs repository.DocumentRepository, activity repository.ActivityRepository) AnalyticsService {
	return &analyticsService{docs: docs, activity: activity}
}

func (s *analyticsService) UserStats(ctx context.Context, requester access.Identity) (*UserStats, error) {
	since := time.Now().UTC().AddDate(0, 0, -statsTimelineDays)

	stats, err := s.docs.StatsByOwner(ctx, requester.ID, since)
	if err != nil {
		return nil, err
	}
	recents, err := s.activity.ListRecentByUser(ctx, requester.ID, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	return &UserStats{
		TotalDocuments: stats.TotalDocuments,
		TotalStorage:   stats.TotalSize,
		FileTypes:      stats.FileTypes,
		UploadTimeline: stats.Timeline,
		RecentActivity: recents,
	}, nil
}

func (s *analyticsService) Recents(ctx context.Context, requester access.Identity) ([]model.ActivityEntry, error) {
	return s.activity.ListRecentByUser(ctx, requester.ID, recentActivityLimit)
}
