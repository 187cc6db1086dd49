package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"docvault/internal/model"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var noteTestColumns = []string{"id", "title", "description", "user_id", "username", "created_at", "updated_at"}

func noteRow(n *model.Note) *sqlmock.Rows {
	return sqlmock.NewRows(noteTestColumns).
		AddRow(n.ID, n.Title, n.Description, n.UserID, n.Username, n.CreatedAt, n.UpdatedAt)
}

func TestNotePostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewNotePostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	note := &model.Note{
		ID:          "n1",
		Title:       "groceries",
		Description: "milk, eggs",
		UserID:      "u1",
		Username:    "alice",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	mock.ExpectQuery("INSERT INTO notes").
		WithArgs(note.ID, note.Title, note.Description, note.UserID, note.Username, note.CreatedAt, note.UpdatedAt).
		WillReturnRows(noteRow(note))

	result, err := repo.Create(ctx, note)

	assert.NoError(t, err)
	assert.Equal(t, "n1", result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotePostgres_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewNotePostgres(db)
	ctx := context.Background()

	now := time.Now()
	note := &model.Note{ID: "n1", Title: "t", Description: "d", UserID: "u1", Username: "alice", CreatedAt: now, UpdatedAt: now}
	mock.ExpectQuery("SELECT (.+) FROM notes\\s+WHERE user_id = ?").
		WithArgs("u1").
		WillReturnRows(noteRow(note))

	items, err := repo.ListByUser(ctx, "u1")

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "u1", items[0].UserID)
}

func TestNotePostgres_FindByIDAndUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewNotePostgres(db)
	ctx := context.Background()

	t.Run("owned", func(t *testing.T) {
		now := time.Now()
		note := &model.Note{ID: "n1", Title: "t", Description: "d", UserID: "u1", Username: "alice", CreatedAt: now, UpdatedAt: now}
		mock.ExpectQuery("SELECT (.+) FROM notes WHERE id = (.+) AND user_id = ?").
			WithArgs("n1", "u1").
			WillReturnRows(noteRow(note))

		got, err := repo.FindByIDAndUser(ctx, "n1", "u1")
		assert.NoError(t, err)
		assert.Equal(t, "n1", got.ID)
	})

	t.Run("someone else's note is invisible", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM notes WHERE id = (.+) AND user_id = ?").
			WithArgs("n1", "u2").
			WillReturnError(sql.ErrNoRows)

		got, err := repo.FindByIDAndUser(ctx, "n1", "u2")
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, got)
	})
}

func TestNotePostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewNotePostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	note := &model.Note{ID: "n1", Title: "new title", Description: "new body", UserID: "u1", Username: "alice", CreatedAt: now.Add(-time.Hour), UpdatedAt: now}

	mock.ExpectQuery("UPDATE notes").
		WithArgs(note.Title, note.Description, note.UpdatedAt, note.ID, note.UserID).
		WillReturnRows(noteRow(note))

	result, err := repo.Update(ctx, note)

	assert.NoError(t, err)
	assert.Equal(t, "new title", result.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotePostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewNotePostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM notes WHERE id = (.+) AND user_id = ?").
		WithArgs("n1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(ctx, "n1", "u1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotePostgres_CountByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewNotePostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM notes WHERE user_id = ?").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountByUser(ctx, "u1")

	assert.NoError(t, err)
	assert.Equal(t, 4, count)
}
