package types

import (
	"errors"
	"path/filepath"
)

// Config holds the runtime parameters for the server and the database.
type Config struct {
	Port     int    `json:"port" yaml:"port"`
	DataDir  string `json:"data_dir" yaml:"data_dir"`
	InMemory bool   `json:"in_memory" yaml:"in_memory"`
}

// Defaults.
const (
	DefaultPort = 3001

	// DBFileName is the SQLite file created under DataDir.
	DBFileName = "tasks.db"
)

// Config validation errors.
var (
	ErrPortInvalid    = errors.New("port must be between 1 and 65535")
	ErrDataDirMissing = errors.New("data_dir must be set for a file-backed database")
)

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return ErrPortInvalid
	}
	if !c.InMemory && c.DataDir == "" {
		return ErrDataDirMissing
	}
	return nil
}

// DBPath returns the SQLite data source for this configuration: ":memory:"
// for in-memory mode, otherwise the database file under DataDir.
func (c Config) DBPath() string {
	if c.InMemory {
		return ":memory:"
	}
	return filepath.Join(c.DataDir, DBFileName)
}
