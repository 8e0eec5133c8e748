package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// document is the file layout: the full settings under userSettings and the
// theme under its own key. Last write wins.
type document struct {
	UserSettings *UserSettings `json:"userSettings,omitempty" yaml:"userSettings,omitempty" toml:"userSettings,omitempty"`
	Theme        string        `json:"theme,omitempty" yaml:"theme,omitempty" toml:"theme,omitempty"`
}

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the stored settings, or the defaults when the file or the
// userSettings entry is missing.
func (s *Store) Load() (UserSettings, error) {
	doc, err := s.read()
	if err != nil {
		return Defaults(), err
	}
	if doc.UserSettings == nil {
		return Defaults(), nil
	}
	return doc.UserSettings.withDefaults(), nil
}

// Theme reads the standalone theme key, falling back to the settings.
func (s *Store) Theme() (string, error) {
	doc, err := s.read()
	if err != nil {
		return Defaults().Theme, err
	}
	if doc.Theme != "" {
		return doc.Theme, nil
	}
	if doc.UserSettings != nil && doc.UserSettings.Theme != "" {
		return doc.UserSettings.Theme, nil
	}
	return Defaults().Theme, nil
}

func (s *Store) Save(settings UserSettings) error {
	settings = settings.withDefaults()
	b, err := encode(s.path, document{UserSettings: &settings, Theme: settings.Theme})
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("could not create settings directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("error writing settings file: %w", err)
	}
	return nil
}

func (s *Store) read() (document, error) {
	var doc document
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("error reading settings file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(s.path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	case ".json":
		err = json.Unmarshal(data, &doc)
	default:
		return doc, unsupported(ext)
	}
	if err != nil {
		return doc, fmt.Errorf("error parsing settings file %s: %w", s.path, err)
	}
	return doc, nil
}

func encode(path string, doc document) ([]byte, error) {
	var (
		b   []byte
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		b, err = toml.Marshal(doc)
	case ".yaml", ".yml":
		b, err = yaml.Marshal(doc)
	case ".json":
		b, err = json.MarshalIndent(doc, "", "  ")
	default:
		return nil, unsupported(ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error encoding settings: %w", err)
	}
	return b, nil
}

func unsupported(ext string) error {
	return fmt.Errorf("unsupported settings file format: %q", ext)
}
