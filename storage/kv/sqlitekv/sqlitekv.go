// Package sqlitekv persists snapshots in an embedded SQLite database.
package sqlitekv

import (
	"database/sql"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/kidsmentor/portal/storage/kv"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
);`

type store struct {
	db *sql.DB
}

var _ kv.Store = (*store)(nil)

func Open(path string) (kv.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "sqlitekv: opening database")
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "sqlitekv: creating schema")
	}
	return &store{db: db}, nil
}

func (s *store) Load(key string) ([]byte, bool, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "sqlitekv: loading %s", key)
	}
	return data, true, nil
}

func (s *store) Save(key string, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, data,
	)
	return errors.Wrapf(err, "sqlitekv: saving %s", key)
}

func (s *store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return errors.Wrapf(err, "sqlitekv: deleting %s", key)
}

func (s *store) Keys() ([]string, error) {
	rows, err := s.db.Query(`SELECT key FROM kv ORDER BY key`)
	if err != nil {
		return nil, errors.Wrap(err, "sqlitekv: listing keys")
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, errors.Wrap(err, "sqlitekv: scanning key")
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (s *store) Close() error { return s.db.Close() }
