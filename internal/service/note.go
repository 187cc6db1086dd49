package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"docvault/internal/access"
	"docvault/internal/model"
	"docvault/internal/repository"
)

// NoteInput is the create/update payload. Limits are contract invariants:
// violating requests are rejected before any persistence attempt.
type NoteInput struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=5000"`
}

// NoteService defines the notes use cases. Notes are strictly owner-scoped;
// there is no administrator override anywhere in this service.
type NoteService interface {
	List(ctx context.Context, requester access.Identity) ([]model.Note, error)
	Create(ctx context.Context, requester access.Identity, in NoteInput) (*model.Note, error)
	Update(ctx context.Context, requester access.Identity, id string, in NoteInput) (*model.Note, error)
	Delete(ctx context.Context, requester access.Identity, id string) error
	Count(ctx context.Context, requester access.Identity) (int, error)
}

type noteService struct {
	notes    repository.NoteRepository
	validate *validator.Validate
}

// NewNoteService constructs a new NoteService.
func NewNoteService(notes repository.NoteRepository) NoteService {
	return &noteService{
		notes:    notes,
		validate: validator.New(),
	}
}

// validateInput trims both fields in place, then enforces the required and
// length constraints.
func (s *noteService) validateInput(in *NoteInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)

	if err := s.validate.Struct(in); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) && len(vErrs) > 0 {
			return fmt.Errorf("%w: %s", ErrValidation, noteFieldMessage(vErrs[0]))
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

func noteFieldMessage(fe validator.FieldError) string {
	switch {
	case fe.Tag() == "required":
		return "title and description are required"
	case fe.Field() == "Title":
		return fmt.Sprintf("title must be at most %d characters", model.NoteTitleMaxLen)
	default:
		return fmt.Sprintf("description must be at most %d characters", model.NoteDescriptionMaxLen)
	}
}

func (s *noteService) List(ctx context.Context, requester access.Identity) ([]model.Note, error) {
	return s.notes.ListByUser(ctx, requester.ID)
}

func (s *noteService) Create(ctx context.Context, requester access.Identity, in NoteInput) (*model.Note, error) {
	if err := s.validateInput(&in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	note := &model.Note{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		UserID:      requester.ID,
		Username:    requester.Username,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.notes.Create(ctx, note)
}

func (s *noteService) Update(ctx context.Context, requester access.Identity, id string, in NoteInput) (*model.Note, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := s.validateInput(&in); err != nil {
		return nil, err
	}

	// Ownership is part of the lookup; a foreign note is indistinguishable
	// from a missing one.
	note, err := s.notes.FindByIDAndUser(ctx, id, requester.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	note.Title = in.Title
	note.Description = in.Description
	note.UpdatedAt = time.Now().UTC()

	updated, err := s.notes.Update(ctx, note)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *noteService) Delete(ctx context.Context, requester access.Identity, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if _, err := s.notes.FindByIDAndUser(ctx, id, requester.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return s.notes.Delete(ctx, id, requester.ID)
}

func (s *noteService) Count(ctx context.Context, requester access.Identity) (int, error) {
	return s.notes.CountByUser(ctx, requester.ID)
}
