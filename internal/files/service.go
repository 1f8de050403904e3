package files

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"
)

// Service provides application-level gallery operations
type Service struct {
	storage Storage
	journal Journal
	namer   *Namer
	rand    func() float64
	clock   func() time.Time
}

// Option configures a Service
type Option func(*Service)

// WithJournal records every completed upload in the given journal
func WithJournal(journal Journal) Option {
	return func(s *Service) {
		s.journal = journal
	}
}

// WithClock replaces the clock used for stored names and upload times
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// WithRand replaces the [0, 1) source used by PickRandom
func WithRand(rand func() float64) Option {
	return func(s *Service) {
		s.rand = rand
	}
}

// NewService creates a new gallery service
func NewService(storage Storage, options ...Option) *Service {
	s := &Service{
		storage: storage,
		rand:    rand.Float64,
		clock:   time.Now,
	}
	for _, option := range options {
		option(s)
	}
	s.namer = NewNamer(s.clock)
	return s
}

// UploadRequest represents a single uploaded file
type UploadRequest struct {
	Name     string
	MimeType string
	Content  io.Reader
}

// Upload stores one file under a timestamp-prefixed name
func (s *Service) Upload(ctx context.Context, req *UploadRequest) (*File, error) {
	if req == nil || req.Content == nil {
		return nil, ErrMissingFile
	}

	name := s.namer.Name(req.Name)
	path, size, err := s.storage.Save(name, req.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	file := &File{
		Name:         name,
		OriginalName: req.Name,
		Path:         path,
		Size:         size,
		MimeType:     req.MimeType,
		UploadedAt:   s.clock(),
	}

	if s.journal != nil {
		if err := s.journal.Record(ctx, file); err != nil {
			slog.WarnContext(ctx, "Failed to record upload", "error", err, "name", name)
		}
	}

	return file, nil
}

// UploadMany stores every file in request order
func (s *Service) UploadMany(ctx context.Context, reqs []*UploadRequest) ([]*File, error) {
	if len(reqs) == 0 {
		return nil, ErrMissingFile
	}

	stored := make([]*File, 0, len(reqs))
	for _, req := range reqs {
		file, err := s.Upload(ctx, req)
		if err != nil {
			return stored, err
		}
		stored = append(stored, file)
	}
	return stored, nil
}

// List reads every stored file and base64-encodes its content
func (s *Service) List(ctx context.Context) (Listing, error) {
	names, err := s.storage.List()
	if err != nil {
		return nil, &ReadError{Err: err}
	}

	listing := make(Listing, 0, len(names))
	for _, name := range names {
		data, err := s.storage.Read(name)
		if err != nil {
			return nil, &ReadError{Name: name, Err: err}
		}
		listing = append(listing, Entry{
			Name:    name,
			Content: base64.StdEncoding.EncodeToString(data),
		})
	}
	return listing, nil
}

// PickRandom returns one stored file and its raw content
func (s *Service) PickRandom(ctx context.Context) (*File, []byte, error) {
	names, err := s.storage.List()
	if err != nil {
		return nil, nil, &ReadError{Err: err}
	}
	if len(names) == 0 {
		return nil, nil, ErrEmpty
	}

	index := int(math.Round(s.rand() * float64(len(names)-1)))
	name := names[index]

	data, err := s.storage.Read(name)
	if err != nil {
		return nil, nil, &ReadError{Name: name, Err: err}
	}

	return &File{Name: name, Size: int64(len(data))}, data, nil
}

// Paginate returns the 1-based page of the full listing
func (s *Service) Paginate(ctx context.Context, pageIndex, itemsPerPage int) (*Page, error) {
	if pageIndex < 1 {
		return nil, ErrInvalidPage
	}
	if itemsPerPage < 1 {
		return nil, ErrInvalidItemsPerPage
	}

	listing, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	total := len(listing)
	totalPages := total / itemsPerPage
	if total%itemsPerPage != 0 {
		totalPages++
	}
	if pageIndex > totalPages {
		return nil, ErrPageNotFound
	}

	start := (pageIndex - 1) * itemsPerPage
	end := min(start+itemsPerPage, total)

	return &Page{
		Page:       pageIndex,
		TotalPages: totalPages,
		Files:      listing[start:end],
	}, nil
}

// History returns the most recent journal records
func (s *Service) History(ctx context.Context, limit int) ([]*File, error) {
	if s.journal == nil {
		return nil, fmt.Errorf("upload journal is not configured")
	}
	return s.journal.List(ctx, limit)
}
