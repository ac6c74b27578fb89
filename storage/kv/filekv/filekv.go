// Package filekv persists each key as one JSON file under a data directory,
// the closest server-side analog of browser local storage.
//
// Keys are expected to stay within [A-Za-z0-9_.-]; other characters are
// replaced with underscores to form the filename, so such keys still load
// and save but come back sanitized from Keys (and from admin exports). All
// keys the portal uses are within the safe set.
package filekv

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/kidsmentor/portal/storage/kv"
)

var unsafeChars = regexp.MustCompile(`[^\w.-]`)

type store struct {
	dir string
}

var _ kv.Store = (*store)(nil)

// Open creates the data directory if needed.
func Open(dir string) (kv.Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "filekv: creating %s", dir)
	}
	return &store{dir: dir}, nil
}

func (s *store) path(key string) string {
	return filepath.Join(s.dir, unsafeChars.ReplaceAllString(key, "_")+".json")
}

func (s *store) Load(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "filekv: reading %s", key)
	}
	return data, true, nil
}

func (s *store) Save(key string, data []byte) error {
	// write-then-rename so a crash never leaves a truncated snapshot
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "filekv: writing %s", key)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return errors.Wrapf(err, "filekv: replacing %s", key)
	}
	return nil
}

func (s *store) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "filekv: deleting %s", key)
	}
	return nil
}

// Keys lists the stored keys as sanitized filenames; see the package doc
// for the key character restriction.
func (s *store) Keys() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Wrapf(err, "filekv: listing %s", s.dir)
	}
	var keys []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ".json"))
	}
	return keys, nil
}

func (s *store) Close() error { return nil }
