package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"docvault/internal/model"
	repoMocks "docvault/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNoteService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		input      NoteInput
		setupMocks func(mRepo *repoMocks.MockNoteRepository)
		wantErr    error
		wantErrMsg string
		checkNote  func(t *testing.T, note *model.Note)
	}{
		{
			name:  "happy path",
			input: NoteInput{Title: "Groceries", Description: "milk, eggs"},
			setupMocks: func(mRepo *repoMocks.MockNoteRepository) {
				mRepo.On("Create", ctx, mock.MatchedBy(func(n *model.Note) bool {
					return n.Title == "Groceries" &&
						n.UserID == testOwner.ID &&
						n.Username == testOwner.Username &&
						n.CreatedAt.Equal(n.UpdatedAt)
				})).Return(&model.Note{ID: "note-1", Title: "Groceries"}, nil)
			},
			checkNote: func(t *testing.T, note *model.Note) {
				assert.Equal(t, "note-1", note.ID)
			},
		},
		{
			name:  "whitespace is trimmed before persisting",
			input: NoteInput{Title: "  Groceries  ", Description: "  milk  "},
			setupMocks: func(mRepo *repoMocks.MockNoteRepository) {
				mRepo.On("Create", ctx, mock.MatchedBy(func(n *model.Note) bool {
					return n.Title == "Groceries" && n.Description == "milk"
				})).Return(&model.Note{ID: "note-2"}, nil)
			},
		},
		{
			name:       "missing title rejected without repo call",
			input:      NoteInput{Title: "   ", Description: "body"},
			setupMocks: func(mRepo *repoMocks.MockNoteRepository) {},
			wantErr:    ErrValidation,
		},
		{
			name:       "missing description rejected without repo call",
			input:      NoteInput{Title: "Groceries"},
			setupMocks: func(mRepo *repoMocks.MockNoteRepository) {},
			wantErr:    ErrValidation,
		},
		{
			name:       "title over 200 chars rejected",
			input:      NoteInput{Title: strings.Repeat("a", 201), Description: "body"},
			setupMocks: func(mRepo *repoMocks.MockNoteRepository) {},
			wantErr:    ErrValidation,
			wantErrMsg: "title must be at most 200 characters",
		},
		{
			name:       "description over 5000 chars rejected",
			input:      NoteInput{Title: "Groceries", Description: strings.Repeat("a", 5001)},
			setupMocks: func(mRepo *repoMocks.MockNoteRepository) {},
			wantErr:    ErrValidation,
			wantErrMsg: "description must be at most 5000 characters",
		},
		{
			name:  "boundary - exactly 200 char title accepted",
			input: NoteInput{Title: strings.Repeat("a", 200), Description: "body"},
			setupMocks: func(mRepo *repoMocks.MockNoteRepository) {
				mRepo.On("Create", ctx, mock.Anything).Return(&model.Note{ID: "note-3"}, nil)
			},
		},
		{
			name:  "repository error",
			input: NoteInput{Title: "Groceries", Description: "milk"},
			setupMocks: func(mRepo *repoMocks.MockNoteRepository) {
				mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErrMsg: "db fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockNoteRepository)
			svc := NewNoteService(mRepo)

			tt.setupMocks(mRepo)

			note, err := svc.Create(ctx, testOwner, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.wantErrMsg != "" {
					assert.Contains(t, err.Error(), tt.wantErrMsg)
				}
				assert.Nil(t, note)
			} else if tt.wantErrMsg != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, note)
				if tt.checkNote != nil {
					tt.checkNote(t, note)
				}
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestNoteService_Update(t *testing.T) {
	ctx := context.Background()

	existing := &model.Note{ID: "note-1", Title: "Old", Description: "old body", UserID: testOwner.ID}

	tests := []struct {
		name       string
		id         string
		input      NoteInput
		setupMocks func(mRepo *repoMocks.MockNoteRepository)
		wantErr    error
	}{
		{
			name:  "happy path re-stamps updated_at",
			id:    "note-1",
			input: NoteInput{Title: "New", Description: "new body"},
			setupMocks: func(mRepo *repoMocks.MockNoteRepository) {
				mRepo.On("FindByIDAndUser", ctx, "note-1", testOwner.ID).Return(existing, nil)
				mRepo.On("Update", ctx, mock.MatchedBy(func(n *model.Note) bool {
					return n.Title == "New" && n.Description == "new body" && n.UpdatedAt.After(n.CreatedAt)
				})).Return(&model.Note{ID: "note-1", Title: "New"}, nil)
			},
		},
		{
			name:       "validation - empty id",
			id:         "",
			input:      NoteInput{Title: "New", Description: "new body"},
			setupMocks: func(mRepo *repoMocks.MockNoteRepository) {},
			wantErr:    ErrIDRequired,
		},
		{
			name:       "invalid input rejected before lookup",
			id:         "note-1",
			input:      NoteInput{Title: "", Description: "body"},
			setupMocks: func(mRepo *repoMocks.MockNoteRepository) {},
			wantErr:    ErrValidation,
		},
		{
			name:  "foreign note looks like not found",
			id:    "note-1",
			input: NoteInput{Title: "New", Description: "new body"},
			setupMocks: func(mRepo *repoMocks.MockNoteRepository) {
				mRepo.On("FindByIDAndUser", ctx, "note-1", testOwner.ID).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockNoteRepository)
			svc := NewNoteService(mRepo)

			tt.setupMocks(mRepo)

			note, err := svc.Update(ctx, testOwner, tt.id, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, note)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, note)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestNoteService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(mRepo *repoMocks.MockNoteRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			id:   "note-1",
			setupMocks: func(mRepo *repoMocks.MockNoteRepository) {
				mRepo.On("FindByIDAndUser", ctx, "note-1", testOwner.ID).
					Return(&model.Note{ID: "note-1", UserID: testOwner.ID}, nil)
				mRepo.On("Delete", ctx, "note-1", testOwner.ID).Return(nil)
			},
		},
		{
			name:       "validation - empty id",
			id:         "",
			setupMocks: func(mRepo *repoMocks.MockNoteRepository) {},
			wantErr:    ErrIDRequired,
		},
		{
			name: "not found",
			id:   "missing-id",
			setupMocks: func(mRepo *repoMocks.MockNoteRepository) {
				mRepo.On("FindByIDAndUser", ctx, "missing-id", testOwner.ID).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockNoteRepository)
			svc := NewNoteService(mRepo)

			tt.setupMocks(mRepo)

			err := svc.Delete(ctx, testOwner, tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestNoteService_ListAndCount(t *testing.T) {
	ctx := context.Background()

	mRepo := new(repoMocks.MockNoteRepository)
	svc := NewNoteService(mRepo)

	mRepo.On("ListByUser", ctx, testOwner.ID).
		Return([]model.Note{{ID: "1"}, {ID: "2"}}, nil)
	mRepo.On("CountByUser", ctx, testOwner.ID).Return(2, nil)

	notes, err := svc.List(ctx, testOwner)
	assert.NoError(t, err)
	assert.Len(t, notes, 2)

	count, err := svc.Count(ctx, testOwner)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	mRepo.AssertExpectations(t)
}
