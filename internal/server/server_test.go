package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthz(t *testing.T) {
	req, err := http.NewRequest("GET", "/healthz", nil)
	assert.NoError(t, err)

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(healthz)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := requestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/", nil)
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rr.Header().Get(HeaderXRequestID))
	})

	t.Run("propagated", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/", nil)
		require.NoError(t, err)
		req.Header.Set(HeaderXRequestID, "abc-123")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rr.Header().Get(HeaderXRequestID))
	})
}

func TestLimitBodyMiddleware(t *testing.T) {
	handler := limitBody(10)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		for {
			_, err := r.Body.Read(buf)
			if err != nil {
				var maxBytesErr *http.MaxBytesError
				if errors.As(err, &maxBytesErr) {
					w.WriteHeader(http.StatusRequestEntityTooLarge)
				}
				return
			}
		}
	}))

	t.Run("body within limit", func(t *testing.T) {
		req, err := http.NewRequest("POST", "/", strings.NewReader("123456789"))
		assert.NoError(t, err)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("body exceeds limit", func(t *testing.T) {
		req, err := http.NewRequest("POST", "/", strings.NewReader("12345678901"))
		assert.NoError(t, err)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	})
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Port:         3000,
		UploadsDir:   "uploads",
		MaxFiles:     15,
		ItemsPerPage: 10,
		MaxMemory:    32 << 20,
		LogLevel:     "info",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"port out of range", func(c *Config) { c.Port = 70000 }},
		{"no uploads dir", func(c *Config) { c.UploadsDir = "" }},
		{"no max files", func(c *Config) { c.MaxFiles = 0 }},
		{"negative items per page", func(c *Config) { c.ItemsPerPage = -1 }},
		{"negative upload size", func(c *Config) { c.MaxUploadSize = -1 }},
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
