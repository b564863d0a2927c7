package workshopsync

import (
	"context"
	"fmt"

	"github.com/frantjc/workshopsync/steamcmd"
)

// DefaultRunner runs `steamcmd` as a subprocess,
// logging its output.
var DefaultRunner steamcmd.Runner = &steamcmd.ExecRunner{Setup: LogExec}

// Download invokes `steamcmd` once to download every given item for appID
// into cfg.StagingDir. It fails only if `steamcmd` does; items that `steamcmd`
// failed to download are discovered afterwards by MoveAndRename.
func Download(ctx context.Context, runner steamcmd.Runner, cfg *Config, username string, appID int, itemIDs []int64) error {
	var (
		log  = LoggerFrom(ctx)
		cmds = &steamcmd.Commands{
			Login:           username,
			ForceInstallDir: cfg.StagingDir,
			Validate:        true,
		}
	)

	if len(itemIDs) == 0 {
		log.Warn("nothing to download", "appID", appID)
		return nil
	}

	for _, itemID := range itemIDs {
		cmds.WorkshopDownloadItems = append(cmds.WorkshopDownloadItems, steamcmd.WorkshopDownloadItem{
			AppID:           appID,
			PublishedFileID: itemID,
		})
	}

	log.Info("downloading items", "appID", appID, "items", len(itemIDs))

	if err := runner.Run(ctx, cfg.SteamcmdPath, cmds.ToArgs()...); err != nil {
		return fmt.Errorf("run %s: %w", cfg.SteamcmdPath, err)
	}

	return nil
}
