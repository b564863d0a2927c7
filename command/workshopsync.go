package command

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/frantjc/workshopsync"
	"github.com/frantjc/workshopsync/steamcmd"
	"github.com/frantjc/workshopsync/steamworkshop"
	"github.com/mmatczuk/anyflag"
	"github.com/spf13/cobra"
)

// NewWorkshopSync is the entrypoint for workshopsync. opts are
// applied after the ones built from flags.
func NewWorkshopSync(opts ...workshopsync.SyncOpt) *cobra.Command {
	var (
		cfg = &workshopsync.Config{
			Ambiguous: workshopsync.AmbiguousFirst,
		}
		username string
		apiURL   string
		timeout  time.Duration
		cmd      = &cobra.Command{
			Use:   "workshopsync [flags] APPID COLLECTION",
			Short: "Download a Steam Workshop collection and name each item after its published filename",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				var (
					ctx = cmd.Context()
					log = workshopsync.LoggerFrom(ctx)
				)

				appID, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("parse app ID %q: %w", args[0], err)
				}

				collectionID, err := steamworkshop.ParsePublishedFileID(args[1])
				if err != nil {
					return err
				}

				u, err := url.Parse(apiURL)
				if err != nil {
					return fmt.Errorf("parse --api-url: %w", err)
				}

				report, err := workshopsync.Sync(ctx, cfg,
					&workshopsync.Request{
						AppID:        appID,
						CollectionID: collectionID,
						Username:     username,
					},
					append([]workshopsync.SyncOpt{
						workshopsync.WithClient(steamworkshop.NewClient(
							steamworkshop.WithURL(u),
							steamworkshop.WithTimeout(timeout),
						)),
					}, opts...)...,
				)
				if err != nil {
					return err
				}

				if len(report.Failed) > 0 {
					log.Warn("some items were not synced", "failed", report.Failed)
				}

				return nil
			},
		}
	)

	cmd.Flags().StringVarP(&username, "user", "u", "anonymous", "Steam username to log into steamcmd with")

	cmd.Flags().StringVar(&cfg.StagingDir, "staging", filepath.Join(xdg.CacheHome, "workshopsync"), "Directory for steamcmd to download into")
	_ = cmd.MarkFlagDirname("staging")

	cmd.Flags().StringVarP(&cfg.DestinationDir, "destination", "d", ".", "Directory to move renamed items into")
	_ = cmd.MarkFlagDirname("destination")

	cmd.Flags().StringVar(&cfg.SteamcmdPath, "steamcmd", steamcmd.DefaultPath, "Path to the steamcmd executable")
	_ = cmd.MarkFlagFilename("steamcmd")

	cmd.Flags().StringVar(&apiURL, "api-url", steamworkshop.DefaultURL.String(), "Steam Web API base URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Timeout for each Steam Web API request (0 for none)")

	cmd.Flags().Var(
		anyflag.NewValue(
			workshopsync.AmbiguousFirst,
			&cfg.Ambiguous,
			anyflag.EnumParser(
				workshopsync.AmbiguousFirst,
				workshopsync.AmbiguousSkip,
			),
		),
		"ambiguous",
		"What to do when an item downloads to more than one file (first, skip)",
	)

	return cmd
}
