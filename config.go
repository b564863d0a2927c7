package workshopsync

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/frantjc/workshopsync/steamcmd"
)

// AmbiguousPolicy decides what happens when an item's
// staging directory holds more than one entry.
type AmbiguousPolicy string

const (
	// AmbiguousFirst moves the lexically first entry
	// and logs a warning.
	AmbiguousFirst AmbiguousPolicy = "first"
	// AmbiguousSkip treats the item as failed.
	AmbiguousSkip AmbiguousPolicy = "skip"
)

func (p AmbiguousPolicy) String() string {
	return string(p)
}

// Config is the immutable configuration of a Sync.
type Config struct {
	// StagingDir is passed to `steamcmd` as +force_install_dir.
	StagingDir string
	// DestinationDir is the flat directory that
	// renamed items are moved into.
	DestinationDir string
	// SteamcmdPath is the `steamcmd` executable.
	// Defaults to steamcmd.DefaultPath.
	SteamcmdPath string
	// Ambiguous defaults to AmbiguousFirst.
	Ambiguous AmbiguousPolicy
}

// Request holds the per-call parameters of a Sync.
type Request struct {
	AppID        int
	CollectionID int64
	Username     string
}

// resolve validates c and returns a copy of it
// with absolute directories and defaults filled in.
func (c Config) resolve() (*Config, error) {
	if c.StagingDir == "" {
		return nil, fmt.Errorf("staging directory required")
	}

	if c.DestinationDir == "" {
		return nil, fmt.Errorf("destination directory required")
	}

	var err error
	if c.StagingDir, err = filepath.Abs(c.StagingDir); err != nil {
		return nil, err
	}

	if c.DestinationDir, err = filepath.Abs(c.DestinationDir); err != nil {
		return nil, err
	}

	if c.SteamcmdPath == "" {
		c.SteamcmdPath = steamcmd.DefaultPath
	}

	switch c.Ambiguous {
	case "":
		c.Ambiguous = AmbiguousFirst
	case AmbiguousFirst, AmbiguousSkip:
	default:
		return nil, fmt.Errorf("unknown ambiguous policy %q", c.Ambiguous)
	}

	return &c, nil
}

// CacheFilePath is the path of the manifest that `steamcmd`
// keeps of the workshop items it has downloaded for appID.
func (c *Config) CacheFilePath(appID int) string {
	return filepath.Join(
		c.StagingDir,
		"steamapps/workshop",
		fmt.Sprintf("appworkshop_%d.acf", appID),
	)
}

// ItemDir is the directory that `steamcmd` downloads
// the given workshop item into.
func (c *Config) ItemDir(appID int, itemID int64) string {
	return filepath.Join(
		c.StagingDir,
		"steamapps/workshop/content",
		strconv.Itoa(appID),
		strconv.FormatInt(itemID, 10),
	)
}

// DestinationPath is where an item named filename ends up.
func (c *Config) DestinationPath(filename string) string {
	return filepath.Join(c.DestinationDir, filename)
}
