package lanstatic

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

const (
	DefaultPort           = 8000
	DefaultMaxPortRetries = 10
)

type Config struct {
	Port           int    `json:"port"`
	RootDir        string `json:"rootdir,omitempty"`
	OpenBrowser    bool   `json:"open_browser"`
	MaxPortRetries int    `json:"max_port_retries"`
}

func CreateConfig() *Config {
	return &Config{
		Port:           DefaultPort,
		OpenBrowser:    true,
		MaxPortRetries: DefaultMaxPortRetries,
	}
}

// Validate checks that the config can be served as is. RootDir must be an
// absolute path to an existing directory.
func (c *Config) Validate() error {
	if c.RootDir == "" {
		return fmt.Errorf("rootdir cannot be empty")
	}
	if !filepath.IsAbs(c.RootDir) {
		return fmt.Errorf("rootdir must be absolute: %s", c.RootDir)
	}
	st, err := os.Stat(c.RootDir)
	if err != nil {
		return fmt.Errorf("rootdir: %w", err)
	}
	if !st.IsDir() {
		return fmt.Errorf("rootdir is not a directory: %s", c.RootDir)
	}
	if c.Port < 0 || c.Port > maxPort {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if c.MaxPortRetries < 0 {
		return fmt.Errorf("max port retries cannot be negative: %d", c.MaxPortRetries)
	}
	return nil
}

// New returns the request handler for config.RootDir.
func New(config *Config) (http.Handler, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	slog.Info("serving root", "rootdir", config.RootDir)
	return NewHandler(os.DirFS(config.RootDir)), nil
}
