package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"docvault/internal/http/middleware"
	"docvault/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Everything
// except health probes and the auth endpoints sits behind bearer auth.
func RegisterRoutes(
	app *fiber.App,
	db *sql.DB,
	authSvc service.AuthService,
	docSvc service.DocumentService,
	noteSvc service.NoteService,
	analyticsSvc service.AnalyticsService,
) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	auth := app.Group("/auth")
	auth.Post("/register", Register(authSvc))
	auth.Post("/login", Login(authSvc))

	requireAuth := middleware.RequireAuth(authSvc)

	documents := app.Group("/documents", requireAuth)
	documents.Get("/", ListDocuments(docSvc))
	documents.Post("/upload", UploadDocument(docSvc))
	documents.Get("/download/:id", DownloadDocument(docSvc))
	documents.Delete("/:id", DeleteDocument(docSvc))

	notes := app.Group("/notes", requireAuth)
	notes.Get("/", ListNotes(noteSvc))
	notes.Post("/", CreateNote(noteSvc))
	notes.Get("/count", CountNotes(noteSvc))
	notes.Put("/:id", UpdateNote(noteSvc))
	notes.Delete("/:id", DeleteNote(noteSvc))

	app.Get("/recents", requireAuth, Recents(analyticsSvc))

	analytics := app.Group("/analytics", requireAuth)
	analytics.Get("/user-stats", UserStats(analyticsSvc))
}
