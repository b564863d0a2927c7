package workshopsync

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// InvalidateCache removes the manifest `steamcmd` keeps for appID
// so that it does not skip items it believes are up to date.
// A missing manifest is not an error.
func InvalidateCache(ctx context.Context, cfg *Config, appID int) error {
	var (
		log  = LoggerFrom(ctx)
		path = cfg.CacheFilePath(appID)
	)

	if err := os.Remove(path); errors.Is(err, fs.ErrNotExist) {
		log.Warn("couldn't find cache; did it exist?", "path", path)
		return nil
	} else if err != nil {
		return fmt.Errorf("remove cache %s: %w", path, err)
	}

	log.Debug("removed cache", "path", path)

	return nil
}
