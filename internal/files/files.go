package files

import (
	"bytes"
	"encoding/json"
	"time"
)

// File represents a stored upload
type File struct {
	Name         string    `json:"name"`
	OriginalName string    `json:"original_name"`
	Path         string    `json:"path"`
	Size         int64     `json:"size"`
	MimeType     string    `json:"mime_type"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// Entry is a single stored file with its base64-encoded content
type Entry struct {
	Name    string
	Content string
}

// Listing is an ordered mapping from stored name to base64 content.
// It encodes as a JSON object that keeps the listing order.
type Listing []Entry

func (l Listing) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(e.Content)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Page is a bounded slice of the listing plus pagination metadata
type Page struct {
	Page       int     `json:"page"`
	TotalPages int     `json:"totalPages"`
	Files      Listing `json:"files"`
}
