package store

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-library-reserve/internal/config"
	"github.com/MKhiriev/go-library-reserve/internal/logger"
)

// sqliteDefaultParams are appended to the DSN unless the caller set them.
// Foreign keys are off by default in SQLite; the busy timeout lets
// concurrent writers wait for the lock instead of failing immediately.
var sqliteDefaultParams = map[string]string{
	"_foreign_keys": "on",
	"_busy_timeout": "5000",
}

// NewConnectSQLite opens a go-sqlite3 database file, creating its parent
// directory when needed, and pings it.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	path, dsn := sqliteDSN(cfg.DSN)

	// db will be in file
	if err := createLocalDBDirIfNotExists(path); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	conn, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	applyPoolSettings(conn, cfg)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return NewDB(conn, DialectSQLite, log), nil
}

// sqliteDSN splits a go-sqlite3 DSN into the file path and the full DSN
// with the default parameters merged in.
func sqliteDSN(raw string) (path string, dsn string) {
	base, rawQuery, _ := strings.Cut(raw, "?")
	path = strings.TrimPrefix(base, "file:")

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	for key, value := range sqliteDefaultParams {
		if !query.Has(key) {
			query.Set(key, value)
		}
	}

	return path, base + "?" + query.Encode()
}

func createLocalDBDirIfNotExists(path string) error {
	if path == "" || path == ":memory:" {
		return nil
	}

	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		// if not found - create
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating DB directory: %w", err)
		}
	}

	// directory already exists
	return nil
}
