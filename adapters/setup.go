package adapters

import (
	"github.com/soffa-projects/go-tabular/util/h"
)

const (
	fallbackDefaultPageSize = 20
	fallbackMaxPageSize     = 500
)

// Config controls the HTTP adapter. Zero values fall back to the
// TABULAR_DEFAULT_PAGE_SIZE / TABULAR_MAX_PAGE_SIZE environment or to
// built-in defaults.
type Config struct {
	Cors            bool
	BasePath        string
	DefaultPageSize int
	MaxPageSize     int
}

func LoadConfig() Config {
	return Config{
		Cors:            h.GetEnv("TABULAR_CORS") == "true",
		BasePath:        h.GetEnv("TABULAR_BASE_PATH"),
		DefaultPageSize: h.GetEnvInt("TABULAR_DEFAULT_PAGE_SIZE", fallbackDefaultPageSize),
		MaxPageSize:     h.GetEnvInt("TABULAR_MAX_PAGE_SIZE", fallbackMaxPageSize),
	}
}

// ClampPageSize applies defaulting and the configured upper bound to a
// requested page size.
func (c Config) ClampPageSize(size int) int {
	def := c.DefaultPageSize
	if def <= 0 {
		def = fallbackDefaultPageSize
	}
	max := c.MaxPageSize
	if max <= 0 {
		max = fallbackMaxPageSize
	}
	if size <= 0 {
		return def
	}
	if size > max {
		return max
	}
	return size
}
