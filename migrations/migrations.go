// Package migrations embeds the goose SQL migrations for the credential stores.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Postgres returns the migrations for the postgres credential store.
func Postgres() fs.FS { return sub("postgres") }

// SQLite returns the migrations for the local sqlite credential store.
func SQLite() fs.FS { return sub("sqlite") }

func sub(dir string) fs.FS {
	f, err := fs.Sub(files, dir)
	if err != nil {
		// dir is a literal embedded above.
		panic(err)
	}
	return f
}
