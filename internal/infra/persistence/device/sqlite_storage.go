// Package device implements the device-scoped key/value store and the
// repositories layered on top of it.
package device

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"whatwashere/internal/domain/repository"
	"whatwashere/internal/errors"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// SQLiteStorage is a DeviceStorage backed by a single SQLite file.
type SQLiteStorage struct {
	db    *sql.DB
	quota int
}

// NewSQLiteStorage opens (creating if needed) the database at path.
// quota is the largest accepted value in bytes; zero disables the check.
func NewSQLiteStorage(path string, quota int) (*SQLiteStorage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "failed to create device storage directory")
		}
	}

	db, err := sql.Open("sqlite", dataSourceName(path))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open device storage")
	}
	// one writer keeps read-modify-write sequences serialized
	db.SetMaxOpenConns(1)

	s := &SQLiteStorage{db: db, quota: quota}
	if err := s.migrate(); err != nil {
		_ = db.Close()

		return nil, errors.Wrap(err, "failed to migrate device storage")
	}

	return s, nil
}

// busyTimeoutMillis is how long a connection waits on a lock held by another
// process (the service and the shell share the file).
const busyTimeoutMillis = 5000

func dataSourceName(path string) string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		filepath.ToSlash(path), busyTimeoutMillis)
}

func (s *SQLiteStorage) migrate() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS device_storage (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);`

	_, err := s.db.Exec(schema)

	return errors.WithStack(err)
}

// GetItem implements repository.DeviceStorage.
func (s *SQLiteStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM device_storage WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "get device item %q", key)
	}

	return value, true, nil
}

// SetItem implements repository.DeviceStorage.
func (s *SQLiteStorage) SetItem(ctx context.Context, key, value string) error {
	if err := checkQuota(s.quota, key, value); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO device_storage (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UnixMilli(),
	)

	return errors.Wrapf(err, "set device item %q", key)
}

// RemoveItem implements repository.DeviceStorage.
func (s *SQLiteStorage) RemoveItem(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM device_storage WHERE key = ?`, key)

	return errors.Wrapf(err, "remove device item %q", key)
}

// Close releases the database handle.
func (s *SQLiteStorage) Close() error {
	return errors.WithStack(s.db.Close())
}

func checkQuota(quota int, key, value string) error {
	if quota > 0 && len(key)+len(value) > quota {
		return errors.Wrapf(repository.ErrQuotaExceeded, "item %q is %d bytes", key, len(value))
	}

	return nil
}
