package mocks

import (
	"context"
	"io"

	"docvault/internal/access"
	"docvault/internal/model"
	"docvault/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Upload(ctx context.Context, requester access.Identity, r io.Reader, filename string, size int64, in service.UploadInput) (*model.Document, error) {
	args := m.Called(ctx, requester, r, filename, size, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context, requester access.Identity) ([]model.Document, error) {
	args := m.Called(ctx, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentService) Download(ctx context.Context, requester access.Identity, id string) (*service.DownloadResult, error) {
	args := m.Called(ctx, requester, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DownloadResult), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, requester access.Identity, id string) error {
	args := m.Called(ctx, requester, id)
	return args.Error(0)
}
