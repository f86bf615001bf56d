package registry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/parthshah1/tzc/config"
)

// SnapshotLayout names snapshot directories under the base dir.
const SnapshotLayout = "2006-01-02T150405"

// Store reads and rewrites the tezos-client registries and the tzc bundles.
// Every write is a whole-file read-modify-write with no locking.
type Store struct {
	paths config.Paths
}

func NewStore(paths config.Paths) *Store {
	return &Store{paths: paths}
}

func (s *Store) Paths() config.Paths {
	return s.paths
}

// Path returns the file backing kind.
func (s *Store) Path(kind Kind) string {
	switch kind {
	case Contracts:
		return s.paths.Contracts
	case PublicKeyHashs:
		return s.paths.PublicKeyHashs
	case PublicKeys:
		return s.paths.PublicKeys
	case SecretKeys:
		return s.paths.SecretKeys
	}
	return filepath.Join(s.paths.BaseDir, string(kind))
}

// readFile returns nil content for a missing file.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return bytes.TrimSpace(data), nil
}

// ReadArray reads a registry file. A missing or empty file is an empty registry.
func ReadArray(path string) ([]AliasEntry, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []AliasEntry{}, nil
	}

	var entries []AliasEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if entries == nil {
		entries = []AliasEntry{}
	}
	return entries, nil
}

// ReadObject decodes a JSON object file into v. A missing or empty file leaves v untouched.
func ReadObject(path string, v any) error {
	data, err := readFile(path)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &ParseError{Path: path, Err: err}
	}
	return nil
}

// WriteObject overwrites path with the pretty-printed encoding of v.
func WriteObject(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Registry reads the registry of the given kind.
func (s *Store) Registry(kind Kind) ([]AliasEntry, error) {
	return ReadArray(s.Path(kind))
}

// Names lists the aliases of a registry in file order.
func (s *Store) Names(kind Kind) ([]string, error) {
	entries, err := s.Registry(kind)
	if err != nil {
		return nil, err
	}
	return Names(entries), nil
}

// AppendEntry adds entry at the end of the registry.
func (s *Store) AppendEntry(kind Kind, entry AliasEntry) error {
	entries, err := s.Registry(kind)
	if err != nil {
		return err
	}
	return WriteObject(s.Path(kind), append(entries, entry))
}

// RemoveEntry rewrites the registry without any entry named name.
// It reports whether something was removed; the file is left alone otherwise.
func (s *Store) RemoveEntry(kind Kind, name string) (bool, error) {
	entries, err := s.Registry(kind)
	if err != nil {
		return false, err
	}

	kept := make([]AliasEntry, 0, len(entries))
	for _, e := range entries {
		if e.Name != name {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return false, nil
	}
	return true, WriteObject(s.Path(kind), kept)
}

// Snapshot copies the four registries into a timestamped directory under
// the base dir and returns that directory. Missing registries are skipped.
func (s *Store) Snapshot(now time.Time) (string, error) {
	dir := filepath.Join(s.paths.BaseDir, now.Format(SnapshotLayout))
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	for _, kind := range Kinds {
		err := copyFile(s.Path(kind), filepath.Join(dir, string(kind)))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to snapshot %s: %w", kind, err)
		}
	}
	return dir, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
