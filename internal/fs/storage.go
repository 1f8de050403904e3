package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Storage implements files.Storage using a flat directory
type Storage struct {
	dataDir string
}

// NewStorage creates a new filesystem storage
func NewStorage(dataDir string) *Storage {
	return &Storage{
		dataDir: dataDir,
	}
}

// Save writes content to the data directory under name
func (s *Storage) Save(name string, content io.Reader) (string, int64, error) {
	filePath := filepath.Join(s.dataDir, name)

	if err := os.MkdirAll(s.dataDir, 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create data directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	size, err := io.Copy(file, content)
	if err != nil {
		os.Remove(filePath)
		return "", 0, fmt.Errorf("failed to write file content: %w", err)
	}

	return filePath, size, nil
}

// List returns the names of all entries in the data directory
func (s *Storage) List() ([]string, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// Read returns the content of a stored file
func (s *Storage) Read(name string) ([]byte, error) {
	filePath := filepath.Join(s.dataDir, name)

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", name)
	}

	return os.ReadFile(filePath)
}
