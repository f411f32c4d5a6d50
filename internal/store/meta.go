package store

import (
	"database/sql"
)

//go:generate mockgen -source=meta.go -destination=mock_meta.go -package=store

type MetaStore interface {
	GetLastProcessedMtime(key, path string) (int64, error)
	UpdateMetadata(key, path string, mtime int64) error
}

type SQLMetaStore struct {
	db *sql.DB
}

func NewSQLMetaStore(db *sql.DB) MetaStore {
	return &SQLMetaStore{db: db}
}

// GetLastProcessedMtime returns 0 when nothing was recorded for key and path.
func (s *SQLMetaStore) GetLastProcessedMtime(key, path string) (int64, error) {
	var mtime int64
	err := s.db.QueryRow("SELECT mtime FROM meta WHERE key = ? AND path = ?", key, path).Scan(&mtime)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return mtime, err
}

func (s *SQLMetaStore) UpdateMetadata(key, path string, mtime int64) error {
	_, err := s.db.Exec(`
        INSERT INTO meta (key, path, mtime) 
        VALUES (?, ?, ?) 
        ON CONFLICT(key) DO UPDATE SET 
            path = excluded.path,
            mtime = excluded.mtime`,
		key, path, mtime)
	return err
}
