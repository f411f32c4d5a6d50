package store

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/tursodatabase/go-libsql"

	"github.com/trknhr/hmmtag/internal/logger"
)

// DefaultDBPath returns <user cache dir>/hmmtag/hmmtag.db.
func DefaultDBPath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "hmmtag", "hmmtag.db"), nil
}

// OpenDB opens (creating its directory if needed) the libsql database at
// dbPath and applies the schema.
func OpenDB(dbPath string) (*sql.DB, error) {
	logger.Debug("dbPath: %s", dbPath)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("libsql", "file:"+dbPath)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
