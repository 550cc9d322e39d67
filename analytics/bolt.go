package analytics

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cinefind/cinefind/tmdb"
	json "github.com/goccy/go-json"
	bolt "go.etcd.io/bbolt"
)

var metricsBucket = []byte("metrics")

// BoltTracker keeps counters as JSON records in a bbolt file, keyed by search term.
type BoltTracker struct {
	db    *bolt.DB
	limit int
	now   func() time.Time
}

// OpenBolt opens or creates the bbolt database at path.
func OpenBolt(path string, limit int) (*BoltTracker, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating analytics directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening analytics database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(metricsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating analytics bucket: %w", err)
	}

	return &BoltTracker{db: db, limit: limit, now: time.Now}, nil
}

func (t *BoltTracker) UpdateSearchCount(ctx context.Context, query string, movie *tmdb.Movie) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if movie == nil {
		return errors.New("update search count: movie is nil")
	}

	return t.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(metricsBucket)

		var entry *Entry
		if data := b.Get([]byte(query)); data != nil {
			entry = &Entry{}
			if err := json.Unmarshal(data, entry); err != nil {
				return fmt.Errorf("decoding counter for %q: %w", query, err)
			}
			entry.Count++
			entry.UpdatedAt = t.now()
		} else {
			entry = newEntry(query, movie, t.now())
		}

		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		return b.Put([]byte(query), data)
	})
}

func (t *BoltTracker) TrendingMovies(ctx context.Context) ([]*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries := make([]*Entry, 0)
	err := t.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(metricsBucket).ForEach(func(_ []byte, v []byte) error {
			var entry Entry
			if err := json.Unmarshal(v, &entry); err != nil {
				return err
			}
			entries = append(entries, &entry)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("reading counters: %w", err)
	}

	return rank(entries, t.limit), nil
}

func (t *BoltTracker) Close() error {
	return t.db.Close()
}
