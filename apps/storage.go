// Package apps holds wiring shared by the portal's entry points.
package apps

import (
	"github.com/pkg/errors"

	"github.com/kidsmentor/portal/core"
	"github.com/kidsmentor/portal/storage/kv"
	"github.com/kidsmentor/portal/storage/kv/filekv"
	"github.com/kidsmentor/portal/storage/kv/memkv"
	"github.com/kidsmentor/portal/storage/kv/sqlitekv"
	"github.com/kidsmentor/portal/storage/kv/sqlxkv"
)

// OpenKV opens the key-value backend selected by the `storage` config key.
func OpenKV() (kv.Store, error) {
	switch backend := core.Conf.GetString("storage"); backend {
	case "file":
		return filekv.Open(core.Conf.GetString("dataDir"))
	case "sqlite":
		return sqlitekv.Open(core.Conf.GetString("sqlitePath"))
	case "postgres":
		return sqlxkv.Open(core.Conf.GetString("databaseURL"))
	case "memory":
		return memkv.Open(), nil
	default:
		return nil, errors.Errorf("unknown storage backend %q", backend)
	}
}
