package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/photogroove/pgroove/internal/gallery"
	_ "modernc.org/sqlite"
)

// Cache keeps the most recently fetched photo listing on disk so the
// gallery can be browsed offline.
type Cache struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

func Open(dbPath string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	c := &Cache{readDB: readDB, writeDB: writeDB}
	if err := c.init(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Cache) init() error {
	_, err := c.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS photos (
			url        TEXT PRIMARY KEY,
			size_kb    INTEGER NOT NULL,
			title      TEXT NOT NULL DEFAULT '',
			position   INTEGER NOT NULL,
			fetched_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_photos_position ON photos(position);

		CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (c *Cache) Close() error {
	var errs []error
	if c.readDB != nil {
		errs = append(errs, c.readDB.Close())
	}
	if c.writeDB != nil {
		errs = append(errs, c.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// ReplacePhotos swaps the cached listing for a freshly fetched one,
// preserving the server's ordering.
func (c *Cache) ReplacePhotos(photos []gallery.Photo) error {
	tx, err := c.writeDB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM photos"); err != nil {
		return fmt.Errorf("clearing photos: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO photos (url, size_kb, title, position, fetched_at)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now()
	for i, p := range photos {
		if _, err := stmt.Exec(p.URL, p.Size, p.Title, i, now); err != nil {
			return fmt.Errorf("caching photo %s: %w", p.URL, err)
		}
	}

	return tx.Commit()
}

// GetPhotos returns the cached listing in its original order.
func (c *Cache) GetPhotos() ([]gallery.Photo, error) {
	rows, err := c.readDB.Query("SELECT url, size_kb, title FROM photos ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying photos: %w", err)
	}
	defer rows.Close()

	var photos []gallery.Photo
	for rows.Next() {
		var p gallery.Photo
		if err := rows.Scan(&p.URL, &p.Size, &p.Title); err != nil {
			return nil, fmt.Errorf("scanning photo: %w", err)
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

// Prune deletes cached photos fetched before the retention cutoff.
func (c *Cache) Prune(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	res, err := c.writeDB.Exec("DELETE FROM photos WHERE fetched_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning photos: %w", err)
	}
	return res.RowsAffected()
}

// Stats reports the cached photo count and on-disk database size.
func (c *Cache) Stats(dbPath string) (int, int64, error) {
	var count int
	if err := c.readDB.QueryRow("SELECT COUNT(*) FROM photos").Scan(&count); err != nil {
		return 0, 0, fmt.Errorf("counting photos: %w", err)
	}

	info, err := os.Stat(dbPath)
	if err != nil {
		return count, 0, fmt.Errorf("statting db: %w", err)
	}
	return count, info.Size(), nil
}

func (c *Cache) NeedsRefresh(interval time.Duration) bool {
	var value string
	err := c.readDB.QueryRow("SELECT value FROM meta WHERE key = 'last_refresh'").Scan(&value)
	if err != nil {
		return true
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return true
	}
	return time.Since(t) > interval
}

func (c *Cache) SetLastRefresh() error {
	_, err := c.writeDB.Exec(`
		INSERT INTO meta (key, value) VALUES ('last_refresh', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, time.Now().Format(time.RFC3339))
	return err
}
