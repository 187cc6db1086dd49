package mocks

import (
	"context"

	"docvault/internal/access"
	"docvault/internal/model"
	"docvault/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockNoteService struct {
	mock.Mock
}

func (m *MockNoteService) List(ctx context.Context, requester access.Identity) ([]model.Note, error) {
	args := m.Called(ctx, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Note), args.Error(1)
}

func (m *MockNoteService) Create(ctx context.Context, requester access.Identity, in service.NoteInput) (*model.Note, error) {
	args := m.Called(ctx, requester, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Note), args.Error(1)
}

func (m *MockNoteService) Update(ctx context.Context, requester access.Identity, id string, in service.NoteInput) (*model.Note, error) {
	args := m.Called(ctx, requester, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Note), args.Error(1)
}

func (m *MockNoteService) Delete(ctx context.Context, requester access.Identity, id string) error {
	args := m.Called(ctx, requester, id)
	return args.Error(0)
}

func (m *MockNoteService) Count(ctx context.Context, requester access.Identity) (int, error) {
	args := m.Called(ctx, requester)
	return args.Int(0), args.Error(1)
}
