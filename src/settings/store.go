package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// Store reads and writes the weatherrc JSON file. It is touched at most once
// per invocation; concurrent writers from several processes are not guarded
// against.
type Store struct {
	Path   string
	logger *zap.Logger
}

// NewStore returns a store for the file at path. A nil logger discards output.
func NewStore(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{Path: path, logger: logger}
}

// Exists reports whether the configuration file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.Path)
	return err == nil
}

// Load reads the file. It returns nil, nil when the file does not exist.
func (s *Store) Load() (*Layer, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fileError("failed to read %s", s.Path, err)
	}

	var layer Layer
	if err := json.Unmarshal(data, &layer); err != nil {
		return nil, fileError("failed to parse %s", s.Path, err)
	}
	s.logger.Debug("loaded configuration", zap.String("path", s.Path))
	return &layer, nil
}

// LoadOrCreate reads the file, first writing the built-in defaults when it
// does not exist so that a stable file is left behind.
func (s *Store) LoadOrCreate() (*Layer, error) {
	layer, err := s.Load()
	if err != nil || layer != nil {
		return layer, err
	}

	d := Defaults()
	if err := s.Save(d); err != nil {
		return nil, err
	}
	s.logger.Info("created default configuration", zap.String("path", s.Path))
	created := LayerOf(d)
	return &created, nil
}

// Init writes the defaults, failing if the file already exists.
func (s *Store) Init() error {
	if s.Exists() {
		return &ConfigurationError{Field: "file", Value: s.Path, Err: fmt.Errorf("%s already exists", s.Path)}
	}
	return s.Save(Defaults())
}

// Save overwrites the file with settings as indented JSON with sorted keys.
func (s *Store) Save(settings Settings) error {
	data, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return fileError("failed to encode %s", s.Path, err)
	}
	if err := ensureDir(s.Path); err != nil {
		return fileError("failed to create directory for %s", s.Path, err)
	}
	if err := os.WriteFile(s.Path, append(data, '\n'), 0600); err != nil {
		return fileError("failed to write %s", s.Path, err)
	}
	if err := setFilePermissions(s.Path); err != nil {
		return fileError("failed to set permissions on %s", s.Path, err)
	}
	s.logger.Debug("saved configuration", zap.String("path", s.Path))
	return nil
}

func fileError(format, path string, err error) error {
	return &ConfigurationError{Field: "file", Err: fmt.Errorf(format+": %w", path, err)}
}
