package server

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type Config struct {
	Port          int    `env:"PORT" envDefault:"3000"`
	UploadsDir    string `env:"GALLERY_UPLOADS_DIR" envDefault:"uploads"`
	MaxFiles      int    `env:"GALLERY_MAX_FILES" envDefault:"15"`
	ItemsPerPage  int    `env:"GALLERY_ITEMS_PER_PAGE" envDefault:"10"`
	MaxMemory     int64  `env:"GALLERY_MAX_MEMORY" envDefault:"33554432"`
	MaxUploadSize int64  `env:"GALLERY_MAX_UPLOAD_SIZE" envDefault:"0"`
	DBPath        string `env:"GALLERY_DB_PATH"`
	LogLevel      string `env:"GALLERY_LOG_LEVEL" envDefault:"info"`
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.UploadsDir, validation.Required),
		validation.Field(&c.MaxFiles, validation.Required, validation.Min(1)),
		validation.Field(&c.ItemsPerPage, validation.Required, validation.Min(1)),
		validation.Field(&c.MaxMemory, validation.Required, validation.Min(int64(1))),
		validation.Field(&c.MaxUploadSize, validation.Min(int64(0))),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
	)
}
