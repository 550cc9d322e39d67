// Package cache prunes stale application artifacts such as old dated log files.
package cache

import (
	"os"
	"strings"
	"time"

	"github.com/cinefind/cinefind/filesystem"
	"github.com/cinefind/cinefind/log"
	"github.com/cinefind/cinefind/where"
	"github.com/spf13/afero"
)

const TTL = 7 * 24 * time.Hour

// Prune removes regular files under dir whose modification time is older than ttl.
// Files for which keep returns true are left alone. The number of removed files is returned.
func Prune(dir string, ttl time.Duration, now time.Time, keep func(name string) bool) (int, error) {
	var removed int

	err := afero.Walk(filesystem.API(), dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}

		if info.IsDir() {
			return nil
		}

		if keep != nil && keep(info.Name()) {
			return nil
		}

		if now.Sub(info.ModTime()) <= ttl {
			return nil
		}

		if err := filesystem.API().Remove(path); err != nil {
			return err
		}

		removed++
		return nil
	})

	return removed, err
}

// CollectGarbage prunes expired log files in the background. Today's log file is never removed.
func CollectGarbage() {
	go func() {
		now := time.Now()
		today := now.Format("2006-01-02") + ".log"

		logs, err := Prune(where.Logs(), TTL, now, func(name string) bool {
			return name == today || !strings.HasSuffix(name, ".log")
		})
		if err != nil {
			log.Warnf("pruning logs: %s", err)
		}

		if logs > 0 {
			log.WithFields(log.Fields{"count": logs}).Info("removed expired log files")
		}
	}()
}
