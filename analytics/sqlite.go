package analytics

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cinefind/cinefind/tmdb"
	_ "modernc.org/sqlite"
)

// SQLiteTracker keeps counters in a SQLite table with one row per search term.
type SQLiteTracker struct {
	db    *sql.DB
	limit int
	now   func() time.Time
}

// OpenSQLite opens or creates the database at path. ":memory:" opens a private in-memory database.
func OpenSQLite(path string, limit int) (*SQLiteTracker, error) {
	connStr := path
	if path == ":memory:" {
		connStr = "file::memory:"
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create analytics directory: %w", err)
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open analytics database: %w", err)
	}

	// A single connection keeps in-memory databases coherent and serializes counter updates.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping analytics database: %w", err)
	}

	if path != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	t := &SQLiteTracker{db: db, limit: limit, now: time.Now}
	if err := t.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return t, nil
}

func (t *SQLiteTracker) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS metrics (
		id TEXT PRIMARY KEY,
		search_term TEXT NOT NULL UNIQUE,
		count INTEGER NOT NULL DEFAULT 1,
		movie_id INTEGER NOT NULL,
		poster_url TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL DEFAULT '',
		updated_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_metrics_count ON metrics(count DESC);
	`

	if _, err := t.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

func (t *SQLiteTracker) UpdateSearchCount(ctx context.Context, query string, movie *tmdb.Movie) error {
	if movie == nil {
		return errors.New("update search count: movie is nil")
	}

	entry := newEntry(query, movie, t.now())
	_, err := t.db.ExecContext(ctx, `
		INSERT INTO metrics (id, search_term, count, movie_id, poster_url, title, updated_at)
		VALUES (?, ?, 1, ?, ?, ?, ?)
		ON CONFLICT(search_term) DO UPDATE SET
			count = count + 1,
			updated_at = excluded.updated_at`,
		entry.ID, entry.SearchTerm, entry.MovieID, entry.PosterURL, entry.Title, entry.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("update search count for %q: %w", query, err)
	}
	return nil
}

func (t *SQLiteTracker) TrendingMovies(ctx context.Context) ([]*Entry, error) {
	rows, err := t.db.QueryContext(ctx, `
		SELECT id, search_term, count, movie_id, poster_url, title, updated_at
		FROM metrics
		ORDER BY count DESC, updated_at DESC, search_term ASC
		LIMIT ?`, t.limit)
	if err != nil {
		return nil, fmt.Errorf("query trending: %w", err)
	}
	defer rows.Close()

	entries := make([]*Entry, 0, t.limit)
	for rows.Next() {
		var (
			entry   Entry
			updated int64
		)
		if err := rows.Scan(&entry.ID, &entry.SearchTerm, &entry.Count, &entry.MovieID, &entry.PosterURL, &entry.Title, &updated); err != nil {
			return nil, fmt.Errorf("scan trending: %w", err)
		}
		entry.UpdatedAt = time.Unix(0, updated)
		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

func (t *SQLiteTracker) Close() error {
	return t.db.Close()
}
