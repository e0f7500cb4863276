package jobs

import (
	"context"
	"fmt"

	"skkuri-backend/internal/logger"
)

// CleanupOrphanedArtworks removes stored images that no artwork references.
// Files younger than the grace period are kept so an upload whose record is
// still being written is never removed.
func (jr *JobRunner) CleanupOrphanedArtworks() error {
	return jr.runWithRecovery(JobCleanupOrphanedArtworks, func(ctx context.Context) error {
		removed, err := jr.cleanupOrphanedArtworks(ctx)
		if err != nil {
			return err
		}
		logger.Info("Orphaned artwork cleanup finished", "removed", removed)
		return nil
	})
}

func (jr *JobRunner) cleanupOrphanedArtworks(ctx context.Context) (int, error) {
	files, err := jr.deps.Storage.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list stored files: %w", err)
	}
	if len(files) == 0 {
		return 0, nil
	}

	referenced, err := jr.deps.Artworks.ListStorageKeys(ctx)
	if err != nil {
		return 0, fmt.Errorf("list artwork keys: %w", err)
	}

	cutoff := jr.now().Add(-jr.config.OrphanGracePeriod())
	removed := 0
	for _, f := range files {
		if _, ok := referenced[f.Key]; ok {
			continue
		}
		if f.ModTime.After(cutoff) {
			continue
		}
		if err := jr.deps.Storage.Delete(ctx, f.Key); err != nil {
			logger.Error("Failed to remove orphaned artwork", "key", f.Key, "error", err)
			continue
		}
		logger.Debug("Removed orphaned artwork", "key", f.Key, "size", f.Size)
		removed++
	}
	return removed, nil
}
