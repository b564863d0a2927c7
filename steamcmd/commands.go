package steamcmd

import (
	"fmt"
	"strings"
)

// WorkshopDownloadItem is a single `+workshop_download_item`
// directive.
type WorkshopDownloadItem struct {
	AppID           int
	PublishedFileID int64
}

// Commands is a helper struct to build arguments
// to pass to `steamcmd`.
type Commands struct {
	Login                 string
	ForceInstallDir       string
	WorkshopDownloadItems []WorkshopDownloadItem
	Validate              bool
}

// ToArgs transforms Commands into an array
// of strings to pass to `steamcmd`.
func (c *Commands) ToArgs() []string {
	args := []string{}

	if c.Login != "" {
		args = append(args, "+login", strings.TrimSpace(c.Login))
	} else {
		args = append(args, "+login", "anonymous")
	}

	if c.ForceInstallDir != "" {
		args = append(args, "+force_install_dir", strings.TrimSpace(c.ForceInstallDir))
	}

	for _, item := range c.WorkshopDownloadItems {
		args = append(args,
			"+workshop_download_item",
			fmt.Sprint(item.AppID),
			fmt.Sprint(item.PublishedFileID),
		)
	}

	if c.Validate {
		args = append(args, "validate")
	}

	return append(args, "+quit")
}
