// Package sqlxkv persists snapshots in Postgres for deployments where the
// portal's data directory is not durable.
package sqlxkv

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/kidsmentor/portal/storage/kv"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value BYTEA NOT NULL
);`

type store struct {
	db *sqlx.DB
}

var _ kv.Store = (*store)(nil)

func Open(databaseURL string) (kv.Store, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "sqlxkv: connecting")
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "sqlxkv: creating schema")
	}
	return &store{db: db}, nil
}

func (s *store) Load(key string) ([]byte, bool, error) {
	var data []byte
	err := s.db.Get(&data, `SELECT value FROM kv WHERE key = $1`, key)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "sqlxkv: loading %s", key)
	}
	return data, true, nil
}

func (s *store) Save(key string, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, data,
	)
	return errors.Wrapf(err, "sqlxkv: saving %s", key)
}

func (s *store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = $1`, key)
	return errors.Wrapf(err, "sqlxkv: deleting %s", key)
}

func (s *store) Keys() ([]string, error) {
	var keys []string
	if err := s.db.Select(&keys, `SELECT key FROM kv ORDER BY key`); err != nil {
		return nil, errors.Wrap(err, "sqlxkv: listing keys")
	}
	return keys, nil
}

func (s *store) Close() error { return s.db.Close() }
