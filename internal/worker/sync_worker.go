package worker

import (
	"context"

	"github.com/trknhr/hmmtag/internal/logger"
)

type SyncWorker interface {
	Key() string
	Path() string
	NeedsReload() bool
	Sync() error
}

// RunSync runs s once unless it is up to date and force is unset. Sync runs
// in its own goroutine so that ctx's deadline bounds the wait.
func RunSync(ctx context.Context, s SyncWorker, force bool) (bool, error) {
	if !force && !s.NeedsReload() {
		logger.Debug("[%s] sync skipped (up-to-date)", s.Key())
		return false, nil
	}

	done := make(chan error, 1)
	go func() {
		done <- s.Sync()
	}()

	select {
	case err := <-done:
		if err != nil {
			logger.Error("[%s] sync failed: %v", s.Key(), err)
			return false, err
		}
		logger.Info("[%s] sync done", s.Key())
		return true, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}
