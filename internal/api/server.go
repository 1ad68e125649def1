package api

import (
	"io"
	"log/slog"
	"net/http"

	"storage-manager/internal/config"
	"storage-manager/internal/database"
	"storage-manager/internal/ratelimit"
	"storage-manager/internal/service"
	"storage-manager/internal/websocket"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	config   *config.Config
	store    *database.Store
	services *service.Services
	wsHub    *websocket.Hub
	limiter  *ratelimit.Limiter
	log      *slog.Logger
}

func NewServer(cfg *config.Config, store *database.Store, services *service.Services, wsHub *websocket.Hub, limiter *ratelimit.Limiter, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{
		config:   cfg,
		store:    store,
		services: services,
		wsHub:    wsHub,
		limiter:  limiter,
		log:      log,
	}
}

// Routes builds the full router. Everything under /api/v1 except the auth
// endpoints requires a bearer token.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.config.HTTP.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Get("/ws", s.ServeWsHandler)
	r.Get("/health", s.HealthCheckHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if s.limiter != nil {
				r.Use(ratelimit.Middleware(s.limiter))
			}
			r.Post("/auth/register", s.RegisterHandler)
			r.Post("/auth/login", s.LoginHandler)
			r.Post("/auth/refresh", s.RefreshTokenHandler)
			r.Post("/auth/logout", s.LogoutHandler)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)

			r.Get("/me", s.GetCurrentUserHandler)
			r.Get("/me/storage", s.GetStorageUsageHandler)
			r.Post("/me/password", s.ChangePasswordHandler)

			r.Get("/sessions", s.ListSessionsHandler)
			r.Delete("/sessions/{sessionId}", s.DeleteSessionHandler)
			r.Post("/sessions/terminate_all", s.TerminateAllSessionsHandler)

			r.Post("/folders", s.CreateFolderHandler)
			r.Get("/folders", s.ListFoldersHandler)
			r.Get("/folders/{folderId}", s.GetFolderHandler)
			r.Get("/folders/{folderId}/path", s.GetFolderPathHandler)
			r.Patch("/folders/{folderId}", s.UpdateFolderHandler)
			r.Delete("/folders/{folderId}", s.DeleteFolderHandler)
			r.Post("/folders/{folderId}/duplicate", s.DuplicateFolderHandler)

			r.Post("/files", s.UploadFilesHandler)
			r.Get("/files", s.ListFilesHandler)
			r.Get("/files/{fileId}", s.GetFileHandler)
			r.Get("/files/{fileId}/download", s.DownloadFileHandler)
			r.Patch("/files/{fileId}", s.UpdateFileHandler)
			r.Delete("/files/{fileId}", s.DeleteFileHandler)
			r.Post("/files/{fileId}/duplicate", s.DuplicateFileHandler)

			r.Post("/notes", s.CreateNoteHandler)
			r.Get("/notes", s.ListNotesHandler)
			r.Get("/notes/{noteId}", s.GetNoteHandler)
			r.Patch("/notes/{noteId}", s.UpdateNoteHandler)
			r.Delete("/notes/{noteId}", s.DeleteNoteHandler)

			r.Get("/summary", s.GetSummaryHandler)
			r.Get("/events", s.GetEventsHandler)
		})
	})

	return r
}
