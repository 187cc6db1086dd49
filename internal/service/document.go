package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"docvault/internal/access"
	"docvault/internal/filetype"
	"docvault/internal/model"
	"docvault/internal/repository"
	"docvault/internal/storage"
)

// UploadInput carries the metadata fields from the upload form.
type UploadInput struct {
	Title       string
	Description string
	AccessLevel string
}

// DownloadResult is everything the handler needs to answer a download
// request: where to redirect and which headers to set.
type DownloadResult struct {
	URL         string
	Filename    string
	ContentType string
}

// DocumentService defines the document lifecycle use cases. Every method
// takes the requester explicitly; ownership and role checks happen here, not
// in handlers.
type DocumentService interface {
	// Upload classifies the file, stores the bytes, persists the metadata
	// record and appends an upload activity entry.
	Upload(ctx context.Context, requester access.Identity, r io.Reader, filename string, size int64, in UploadInput) (*model.Document, error)

	// List returns the requester's documents; administrators see all.
	List(ctx context.Context, requester access.Identity) ([]model.Document, error)

	// Download resolves a time-limited URL plus download headers.
	Download(ctx context.Context, requester access.Identity, id string) (*DownloadResult, error)

	// Delete removes the stored object and the metadata record.
	Delete(ctx context.Context, requester access.Identity, id string) error
}

type documentService struct {
	store         storage.Storage
	docs          repository.DocumentRepository
	activity      repository.ActivityRepository
	presignExpiry time.Duration
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, docs repository.DocumentRepository, activity repository.ActivityRepository, presignExpiry time.Duration) DocumentService {
	return &documentService{store: store, docs: docs, activity: activity, presignExpiry: presignExpiry}
}

func (s *documentService) Upload(ctx context.Context, requester access.Identity, r io.Reader, filename string, size int64, in UploadInput) (*model.Document, error) {
	if r == nil || size <= 0 {
		return nil, ErrFileRequired
	}

	info := filetype.Classify(filename)

	genName := uuid.New().String()
	if info.Extension != "" {
		genName += "." + info.Extension
	}
	key := "documents/" + genName

	// Bytes go to storage first. A record must never exist without its
	// object; the reverse is tolerated.
	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: info.MIMEType,
		Metadata: map[string]string{
			storage.MetaOriginalFilename: filename,
			storage.MetaResourceType:     string(info.ResourceType),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	fileURL, err := s.store.PresignGet(ctx, key, s.presignExpiry)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("presign failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("presign failed: %w", err)
	}

	accessLevel := in.AccessLevel
	if accessLevel == "" {
		accessLevel = model.AccessLevelPrivate
	}

	doc := &model.Document{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		FileType:    info.Extension,
		FileURL:     fileURL,
		StoragePath: objInfo.Key,
		FileSize:    objInfo.Size,
		UploaderID:  requester.ID,
		AccessLevel: accessLevel,
		UploadDate:  time.Now().UTC(),
	}
	stored, err := s.docs.Create(ctx, doc)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	s.logActivity(ctx, requester.ID, stored.ID, model.ActionUpload)

	return stored, nil
}

// List filters to the requester's own documents unless they are an admin.
func (s *documentService) List(ctx context.Context, requester access.Identity) ([]model.Document, error) {
	if requester.IsAdmin() {
		return s.docs.ListAll(ctx)
	}
	return s.docs.ListByOwner(ctx, requester.ID)
}

func (s *documentService) Download(ctx context.Context, requester access.Identity, id string) (*DownloadResult, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !access.CanAccess(requester, doc.UploaderID) {
		return nil, ErrForbidden
	}

	url, err := s.store.PresignGet(ctx, doc.StoragePath, s.presignExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign download: %w", err)
	}

	filename := doc.Title
	if doc.FileType != "" {
		filename += "." + doc.FileType
	}

	s.logActivity(ctx, requester.ID, doc.ID, model.ActionDownload)

	return &DownloadResult{
		URL:         url,
		Filename:    filename,
		ContentType: filetype.MIMEForExtension(doc.FileType),
	}, nil
}

// Delete removes the object first, then the record, so a record never
// outlives a successful delete without its object.
func (s *documentService) Delete(ctx context.Context, requester access.Identity, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if !access.CanAccess(requester, doc.UploaderID) {
		return ErrForbidden
	}

	if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	if err := s.docs.Delete(ctx, id); err != nil {
		return err
	}

	s.logActivity(ctx, requester.ID, doc.ID, model.ActionDelete)

	return nil
}

// logActivity appends to the audit trail. Failures are discarded on purpose:
// the trail is best-effort and must never fail the parent operation.
func (s *documentService) logActivity(ctx context.Context, userID, documentID, action string) {
	_ = s.activity.Append(ctx, &model.RecentActivity{
		ID:         uuid.New().String(),
		UserID:     userID,
		DocumentID: documentID,
		Action:     action,
		Timestamp:  time.Now().UTC(),
	})
}
