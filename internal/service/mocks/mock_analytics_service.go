package mocks

import (
	"context"

	"docvault/internal/access"
	"docvault/internal/model"
	"docvault/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) UserStats(ctx context.Context, requester access.Identity) (*service.UserStats, error) {
	args := m.Called(ctx, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UserStats), args.Error(1)
}

func (m *MockAnalyticsService) Recents(ctx context.Context, requester access.Identity) ([]model.ActivityEntry, error) {
	args := m.Called(ctx, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ActivityEntry), args.Error(1)
}
