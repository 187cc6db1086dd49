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

var documentTestColumns = []string{"id", "title", "description", "file_type", "file_url", "storage_path", "file_size", "uploader_id", "access_level", "upload_date"}

func documentRow(doc *model.Document) *sqlmock.Rows {
	return sqlmock.NewRows(documentTestColumns).
		AddRow(doc.ID, doc.Title, doc.Description, doc.FileType, doc.FileURL, doc.StoragePath, doc.FileSize, doc.UploaderID, doc.AccessLevel, doc.UploadDate)
}

func TestDocumentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	doc := &model.Document{
		ID:          "test-uuid",
		Title:       "Q1",
		Description: "quarterly report",
		FileType:    "pdf",
		FileURL:     "https://storage.example/documents/test.pdf",
		StoragePath: "documents/test.pdf",
		FileSize:    2048,
		UploaderID:  "user-1",
		AccessLevel: "private",
		UploadDate:  now,
	}

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs(doc.ID, doc.Title, doc.Description, doc.FileType, doc.FileURL, doc.StoragePath, doc.FileSize, doc.UploaderID, doc.AccessLevel, doc.UploadDate).
		WillReturnRows(documentRow(doc))

	result, err := repo.Create(ctx, doc)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, doc.ID, result.ID)
	assert.Equal(t, int64(2048), result.FileSize)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		doc := &model.Document{ID: "test-id", Title: "file", FileType: "txt", StoragePath: "documents/file.txt", FileSize: 100, UploaderID: "u1", AccessLevel: "private", UploadDate: time.Now()}
		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs("test-id").
			WillReturnRows(documentRow(doc))

		got, err := repo.FindByID(ctx, "test-id")

		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, "test-id", got.ID)
		assert.Equal(t, "u1", got.UploaderID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		got, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, got)
	})
}

func TestDocumentPostgres_ListByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	doc := &model.Document{ID: "d1", Title: "mine", FileType: "pdf", StoragePath: "documents/d1.pdf", FileSize: 42, UploaderID: "u1", AccessLevel: "private", UploadDate: time.Now()}
	mock.ExpectQuery("SELECT (.+) FROM documents\\s+WHERE uploader_id = ?").
		WithArgs("u1").
		WillReturnRows(documentRow(doc))

	items, err := repo.ListByOwner(ctx, "u1")

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "d1", items[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_ListAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	doc := &model.Document{ID: "d1", Title: "any", FileType: "png", StoragePath: "documents/d1.png", FileSize: 7, UploaderID: "u2", AccessLevel: "private", UploadDate: time.Now()}
	mock.ExpectQuery("SELECT (.+) FROM documents\\s+ORDER BY upload_date DESC").
		WillReturnRows(documentRow(doc))

	items, err := repo.ListAll(ctx)

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM documents WHERE id = ?").
		WithArgs("test-id").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(ctx, "test-id")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_StatsByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()
	since := time.Now().AddDate(0, 0, -30)
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\), COALESCE\\(SUM\\(file_size\\), 0\\)").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"count", "sum"}).AddRow(3, 5120))

	mock.ExpectQuery("SELECT file_type, COUNT\\(\\*\\), COALESCE\\(SUM\\(file_size\\), 0\\)").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"file_type", "count", "sum"}).
			AddRow("pdf", 2, 4096).
			AddRow("png", 1, 1024))

	mock.ExpectQuery("SELECT date_trunc\\('day', upload_date\\) AS day, COUNT\\(\\*\\)").
		WithArgs("u1", since).
		WillReturnRows(sqlmock.NewRows([]string{"day", "count"}).AddRow(day, 3))

	stats, err := repo.StatsByOwner(ctx, "u1", since)

	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalDocuments)
	assert.Equal(t, int64(5120), stats.TotalSize)
	assert.Len(t, stats.FileTypes, 2)
	assert.Equal(t, "pdf", stats.FileTypes[0].FileType)
	assert.Equal(t, int64(4096), stats.FileTypes[0].TotalSize)
	assert.Len(t, stats.Timeline, 1)
	assert.Equal(t, 3, stats.Timeline[0].Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
