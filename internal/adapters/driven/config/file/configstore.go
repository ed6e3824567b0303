package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/htmlparser/internal/core/domain"
)

// Config is the html-to-text tool configuration.
type Config struct {
	// Width is the default wrap width. Zero means the input length.
	Width int `toml:"width"`

	// Verbose enables debug output on stderr.
	Verbose bool `toml:"verbose"`
}

// Validate reports whether the configuration values are usable.
func (c Config) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("%w: width must not be negative, got %d", domain.ErrInvalidInput, c.Width)
	}
	return nil
}

// ConfigStore is a file-based TOML configuration source.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	config   Config
}

// DefaultDir returns the directory holding config.toml when none is given.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "htmlparser"), nil
}

// NewConfigStore creates a config store reading configDir/config.toml.
// If configDir is empty, DefaultDir is used.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}
	return NewConfigStoreAt(filepath.Join(configDir, "config.toml"))
}

// NewConfigStoreAt creates a config store reading the file at path.
// A missing file yields the zero configuration.
func NewConfigStoreAt(path string) (*ConfigStore, error) {
	s := &ConfigStore{filePath: path}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads configuration from the TOML file.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file - defaults apply
			s.config = Config{}
			return nil
		}
		return err
	}

	var loaded Config
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to parse %s: %w", s.filePath, err)
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", s.filePath, err)
	}

	s.config = loaded
	return nil
}

// Config returns the loaded configuration.
func (s *ConfigStore) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
