package workshopsync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

var (
	// ErrNotDownloaded is reported for an item whose
	// staging directory is missing or empty.
	ErrNotDownloaded = errors.New("not downloaded")
	// ErrAmbiguous is reported for an item whose staging directory
	// holds more than one entry under AmbiguousSkip.
	ErrAmbiguous = errors.New("ambiguous download")
)

// Report is the per-item outcome of MoveAndRename.
type Report struct {
	Moved  []int64
	Failed []int64
}

// MoveAndRename moves each item's download out of cfg.StagingDir
// and into cfg.DestinationDir under its mapped filename, replacing any
// file already there. A failure to move one item is logged and does not
// stop the others.
func MoveAndRename(ctx context.Context, cfg *Config, appID int, mapping FileMapping) (*Report, error) {
	var (
		log    = LoggerFrom(ctx)
		report = &Report{}
	)

	if err := os.MkdirAll(cfg.DestinationDir, 0755); err != nil {
		return nil, fmt.Errorf("create destination %s: %w", cfg.DestinationDir, err)
	}

	for _, itemID := range mapping.ItemIDs() {
		var (
			filename = mapping[itemID]
			itemLog  = log.With("itemID", itemID, "filename", filename)
		)

		src, err := findDownload(ctx, cfg, appID, itemID)
		if err != nil {
			itemLog.Error("looks like we failed to download "+filename, "err", err)
			report.Failed = append(report.Failed, itemID)
			continue
		}

		dst := cfg.DestinationPath(filename)
		if err := replace(src, dst); err != nil {
			itemLog.Error("failed to move "+filename, "src", src, "dst", dst, "err", err)
			report.Failed = append(report.Failed, itemID)
			continue
		}

		itemLog.Debug("moved", "src", src, "dst", dst)
		report.Moved = append(report.Moved, itemID)
	}

	return report, nil
}

// findDownload returns the path of the single entry that `steamcmd`
// downloaded the item into. Its name is not known in advance.
func findDownload(ctx context.Context, cfg *Config, appID int, itemID int64) (string, error) {
	dir := cfg.ItemDir(appID, itemID)

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s: %w", dir, ErrNotDownloaded)
	} else if err != nil {
		return "", err
	}

	switch len(entries) {
	case 0:
		return "", fmt.Errorf("%s is empty: %w", dir, ErrNotDownloaded)
	case 1:
	default:
		if cfg.Ambiguous == AmbiguousSkip {
			return "", fmt.Errorf("%s has %d entries: %w", dir, len(entries), ErrAmbiguous)
		}

		LoggerFrom(ctx).Warn("multiple entries, using the first",
			"itemID", itemID,
			"dir", dir,
			"entries", len(entries),
			"using", entries[0].Name(),
		)
	}

	// os.ReadDir sorts by filename.
	return filepath.Join(dir, entries[0].Name()), nil
}

// replace moves src to dst, first removing whatever is at dst.
func replace(src, dst string) error {
	srcFi, err := os.Lstat(src)
	if err != nil {
		return err
	}

	if dstFi, err := os.Lstat(dst); err == nil {
		switch {
		case !dstFi.IsDir():
			if err := os.Remove(dst); err != nil {
				return err
			}
		case srcFi.IsDir():
			if err := os.RemoveAll(dst); err != nil {
				return err
			}
		default:
			return fmt.Errorf("refusing to replace directory %s with file %s", dst, src)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.Rename(src, dst); errors.Is(err, syscall.EXDEV) && srcFi.Mode().IsRegular() {
		return copyAndRemove(src, dst, srcFi.Mode().Perm())
	} else if err != nil {
		return err
	}

	return nil
}

// copyAndRemove moves a regular file across filesystems.
func copyAndRemove(src, dst string, perm fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return errors.Join(err, in.Close())
	}

	if _, err := io.Copy(out, in); err != nil {
		return errors.Join(err, in.Close(), out.Close(), os.Remove(dst))
	}

	if err := errors.Join(in.Close(), out.Close()); err != nil {
		return errors.Join(err, os.Remove(dst))
	}

	return os.Remove(src)
}
