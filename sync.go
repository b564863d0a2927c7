package workshopsync

import (
	"context"

	"github.com/frantjc/workshopsync/steamcmd"
	"github.com/frantjc/workshopsync/steamworkshop"
	"github.com/google/uuid"
)

// SyncOpts holds the collaborators Sync talks to.
type SyncOpts struct {
	Client MetadataClient
	Runner steamcmd.Runner
}

// SyncOpt configures SyncOpts.
type SyncOpt func(*SyncOpts)

// WithClient sets the client used to query the Steam Web API.
func WithClient(client MetadataClient) SyncOpt {
	return func(o *SyncOpts) {
		o.Client = client
	}
}

// WithRunner sets the Runner used to invoke `steamcmd`.
func WithRunner(runner steamcmd.Runner) SyncOpt {
	return func(o *SyncOpts) {
		o.Runner = runner
	}
}

// Sync downloads every item in the request's collection and moves each into
// cfg.DestinationDir under its published filename. It returns an error only
// if the run was aborted: the cache could not be invalidated, the Steam Web
// API failed or returned something unexpected, or `steamcmd` exited non-zero.
// Items that fail individually are logged and listed in the Report.
func Sync(ctx context.Context, cfg *Config, req *Request, opts ...SyncOpt) (*Report, error) {
	o := &SyncOpts{
		Client: steamworkshop.DefaultClient,
		Runner: DefaultRunner,
	}

	for _, opt := range opts {
		opt(o)
	}

	cfg, err := cfg.resolve()
	if err != nil {
		return nil, err
	}

	log := LoggerFrom(ctx).With(
		"run", uuid.NewString(),
		"appID", req.AppID,
		"collectionID", req.CollectionID,
	)
	ctx = WithLogger(ctx, log)

	if err := InvalidateCache(ctx, cfg, req.AppID); err != nil {
		return nil, err
	}

	itemIDs, err := ResolveCollection(ctx, o.Client, req.CollectionID)
	if err != nil {
		return nil, err
	}

	mapping, err := ResolveFileMapping(ctx, o.Client, itemIDs)
	if err != nil {
		return nil, err
	}

	if err := Download(ctx, o.Runner, cfg, req.Username, req.AppID, mapping.ItemIDs()); err != nil {
		return nil, err
	}

	report, err := MoveAndRename(ctx, cfg, req.AppID, mapping)
	if err != nil {
		return nil, err
	}

	log.Info("synced collection",
		"items", len(itemIDs),
		"moved", len(report.Moved),
		"failed", len(report.Failed),
		"destination", cfg.DestinationDir,
	)

	return report, nil
}
