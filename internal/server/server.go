package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pavel-fokin/files-gallery/internal/files"
)

func New(cfg *Config, fileService *files.Service) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           NewRouter(cfg, fileService),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

func NewRouter(cfg *Config, fileService *files.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(requestID, loggingMiddleware)
	if cfg.MaxUploadSize > 0 {
		r.Use(limitBody(cfg.MaxUploadSize))
	}

	r.Get("/healthz", healthz)
	r.Post("/upload", uploadFile(cfg, fileService))
	r.Post("/upload-multiple", uploadFiles(cfg, fileService))
	r.Get("/fetch-single", fetchSingle(fileService))
	r.Get("/fetch-all/pages/{index}", fetchPage(cfg, fileService))

	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)

	return r
}
