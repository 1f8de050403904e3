package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pavel-fokin/files-gallery/internal/files"
)

func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Route not found", http.StatusNotFound)
}

func uploadFile(cfg *Config, fileService *files.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		headers, err := parseUploads(r, "file", 1, cfg.MaxMemory)
		if err != nil {
			uploadFailed(w, r, err)
			return
		}
		if len(headers) == 0 {
			http.Error(w, "No file uploaded.", http.StatusBadRequest)
			return
		}

		stored, err := storeUploads(r, fileService, headers)
		if err != nil {
			uploadFailed(w, r, err)
			return
		}

		slog.InfoContext(r.Context(), "File uploaded", "name", stored[0].Name, "size", stored[0].Size)
		fmt.Fprintf(w, "File uploaded successfully: %s", stored[0].Path)
	}
}

func uploadFiles(cfg *Config, fileService *files.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		headers, err := parseUploads(r, "files", cfg.MaxFiles, cfg.MaxMemory)
		if err != nil {
			uploadFailed(w, r, err)
			return
		}
		if len(headers) == 0 {
			http.Error(w, "No files uploaded.", http.StatusBadRequest)
			return
		}

		stored, err := storeUploads(r, fileService, headers)
		if err != nil {
			uploadFailed(w, r, err)
			return
		}

		paths := make([]string, 0, len(stored))
		for _, file := range stored {
			paths = append(paths, file.Path)
		}

		slog.InfoContext(r.Context(), "Files uploaded", "count", len(stored))
		fmt.Fprintf(w, "Files uploaded successfully: %s", strings.Join(paths, ", "))
	}
}

// parseUploads returns the files sent under field. A request that is not
// multipart carries no files. Files under any other field, or more than
// maxFiles, reject the whole request before anything is written.
func parseUploads(r *http.Request, field string, maxFiles int, maxMemory int64) ([]*multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse multipart form: %w", err)
	}

	for name := range r.MultipartForm.File {
		if name != field {
			return nil, fmt.Errorf("%w: %s", files.ErrUnexpectedField, name)
		}
	}

	headers := r.MultipartForm.File[field]
	if len(headers) > maxFiles {
		return nil, fmt.Errorf("%w: got %d, limit %d", files.ErrTooManyFiles, len(headers), maxFiles)
	}
	return headers, nil
}

func storeUploads(r *http.Request, fileService *files.Service, headers []*multipart.FileHeader) ([]*files.File, error) {
	defer r.MultipartForm.RemoveAll()

	reqs := make([]*files.UploadRequest, 0, len(headers))
	for _, header := range headers {
		content, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open uploaded file: %w", err)
		}
		defer content.Close()

		reqs = append(reqs, &files.UploadRequest{
			Name:     header.Filename,
			MimeType: header.Header.Get("Content-Type"),
			Content:  content,
		})
	}

	return fileService.UploadMany(r.Context(), reqs)
}

func uploadFailed(w http.ResponseWriter, r *http.Request, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		http.Error(w, "Request entity too large", http.StatusRequestEntityTooLarge)
		return
	}

	slog.ErrorContext(r.Context(), "Upload failed", "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func fetchSingle(fileService *files.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, content, err := fileService.PickRandom(r.Context())
		if errors.Is(err, files.ErrEmpty) {
			writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{"message": "No images"})
			return
		}
		if err != nil {
			slog.ErrorContext(r.Context(), "Fetch single failed", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		http.ServeContent(w, r, file.Name, time.Time{}, bytes.NewReader(content))
	}
}

func fetchPage(cfg *Config, fileService *files.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pageIndex, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil || pageIndex < 1 {
			http.Error(w, "Invalid page index.", http.StatusBadRequest)
			return
		}

		itemsPerPage := cfg.ItemsPerPage
		if raw := r.URL.Query().Get("items_per_page"); raw != "" {
			itemsPerPage, err = strconv.Atoi(raw)
			if err != nil {
				http.Error(w, "Invalid items per page.", http.StatusBadRequest)
				return
			}
		}

		page, err := fileService.Paginate(r.Context(), pageIndex, itemsPerPage)
		switch {
		case errors.Is(err, files.ErrInvalidPage):
			http.Error(w, "Invalid page index.", http.StatusBadRequest)
		case errors.Is(err, files.ErrInvalidItemsPerPage):
			http.Error(w, "Invalid items per page.", http.StatusBadRequest)
		case errors.Is(err, files.ErrPageNotFound):
			http.Error(w, "Page not found.", http.StatusNotFound)
		case err != nil:
			slog.ErrorContext(r.Context(), "Fetch page failed", "error", err, "page", pageIndex)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		default:
			writeJSON(w, r, http.StatusOK, page)
		}
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "Failed to encode response", "error", err)
	}
}
