package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/photogroove/pgroove/internal/gallery"
)

func testDB(t *testing.T) *Cache {
	t.Helper()
	dir := t.TempDir()
	db, err := Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func samplePhotos() []gallery.Photo {
	return []gallery.Photo{
		{URL: "1.jpeg", Size: 36, Title: "Beachside"},
		{URL: "2.jpeg", Size: 38, Title: "(untitled)"},
		{URL: "3.jpeg", Size: 40, Title: "Mountains"},
	}
}

func TestReplaceAndGet(t *testing.T) {
	db := testDB(t)

	if err := db.ReplacePhotos(samplePhotos()); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := db.GetPhotos()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 photos, got %d", len(got))
	}
	// Server ordering preserved
	if got[0].URL != "1.jpeg" || got[2].URL != "3.jpeg" {
		t.Errorf("unexpected order: %v", got)
	}
	if got[1].Title != "(untitled)" {
		t.Errorf("expected untitled photo, got %q", got[1].Title)
	}
}

func TestReplaceDropsStale(t *testing.T) {
	db := testDB(t)

	if err := db.ReplacePhotos(samplePhotos()); err != nil {
		t.Fatalf("first replace: %v", err)
	}
	if err := db.ReplacePhotos([]gallery.Photo{{URL: "9.jpeg", Size: 12, Title: "New"}}); err != nil {
		t.Fatalf("second replace: %v", err)
	}

	got, err := db.GetPhotos()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 photo after replace, got %d", len(got))
	}
	if got[0].URL != "9.jpeg" {
		t.Errorf("expected 9.jpeg, got %s", got[0].URL)
	}
}

func TestEmptyDB(t *testing.T) {
	db := testDB(t)

	got, err := db.GetPhotos()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected 0 photos in empty db, got %d", len(got))
	}
}

func TestNeedsRefresh(t *testing.T) {
	db := testDB(t)

	if !db.NeedsRefresh(1 * time.Hour) {
		t.Error("expected NeedsRefresh=true when no last_refresh set")
	}

	if err := db.SetLastRefresh(); err != nil {
		t.Fatalf("SetLastRefresh: %v", err)
	}

	if db.NeedsRefresh(1 * time.Hour) {
		t.Error("expected NeedsRefresh=false right after SetLastRefresh")
	}

	if !db.NeedsRefresh(0) {
		t.Error("expected NeedsRefresh=true with zero interval")
	}
}

func TestPrune(t *testing.T) {
	db := testDB(t)
	if err := db.ReplacePhotos(samplePhotos()); err != nil {
		t.Fatalf("replace: %v", err)
	}

	// Everything was just fetched; nothing older than 24h.
	deleted, err := db.Prune(24 * time.Hour)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if deleted != 0 {
		t.Errorf("expected 0 pruned, got %d", deleted)
	}

	// Zero retention prunes everything.
	deleted, err = db.Prune(-time.Second)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if deleted != 3 {
		t.Errorf("expected 3 pruned, got %d", deleted)
	}
}

func TestStats(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	if err := db.ReplacePhotos(samplePhotos()); err != nil {
		t.Fatalf("replace: %v", err)
	}

	count, size, err := db.Stats(dbPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if count != 3 {
		t.Errorf("expected count 3, got %d", count)
	}
	if size == 0 {
		t.Error("expected non-zero db size")
	}
}

func TestOpenCreatesDir(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "sub", "deep", "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("opening db in nested dir: %v", err)
	}
	db.Close()

	if _, err := os.Stat(filepath.Dir(dbPath)); os.IsNotExist(err) {
		t.Error("expected directory to be created")
	}
}
