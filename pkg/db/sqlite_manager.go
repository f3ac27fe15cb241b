package db

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

type StoreConfig struct {
	Path string
}

// SqliteManager holds the read-only handle to the order store for one
// invocation. The store file is created and written by the reconcile
// fetcher; opening it mode=ro keeps this side incapable of mutation.
type SqliteManager struct {
	conn *sql.DB
}

func NewSqliteManager(ctx context.Context, conf StoreConfig) (*SqliteManager, error) {
	// mode=ro only applies to file: URIs; a bare path would silently create
	// a writable database at a missing location.
	conn, err := sql.Open("sqlite", "file:"+conf.Path+"?mode=ro")
	if err != nil {
		return nil, errors.Wrapf(err, "open order store %s", conf.Path)
	}
	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, errors.Wrapf(err, "order store unavailable at %s", conf.Path)
	}

	return &SqliteManager{conn: conn}, nil
}

func (m *SqliteManager) Close() error {
	return m.conn.Close()
}

func (m *SqliteManager) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return m.conn.QueryContext(ctx, query, args...)
}
