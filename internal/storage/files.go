package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Collection file names, kept compatible with the original data files.
const (
	ProductsFile     = "inventory_data.json"
	TransactionsFile = "transactions_data.json"
	UsersFile        = "users_data.json"
)

// ErrCorrupt marks a collection file that exists but cannot be parsed.
// Callers log it and proceed with an empty collection.
var ErrCorrupt = errors.New("unreadable collection file")

// Store reads and writes whole-collection JSON snapshots under a single
// directory. There are no partial writes: every save rewrites the full
// collection file. Single-process exclusive access is assumed.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// Load unmarshals the named collection into out. A missing file is not an
// error: out is left as-is (callers start from an empty slice). A file that
// exists but does not parse returns an error wrapping ErrCorrupt.
func (s *Store) Load(name string, out interface{}) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, ErrCorrupt)
	}
	return nil
}

// Save rewrites the named collection file with the full snapshot of in.
// The write goes through a temp file and rename so a crash mid-write
// never leaves a half-written collection behind.
func (s *Store) Save(name string, in interface{}) error {
	data, err := json.MarshalIndent(in, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp := s.path(name + ".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, s.path(name)); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
