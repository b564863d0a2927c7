package workshopsync

import (
	"context"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/frantjc/workshopsync/steamworkshop"
)

// MetadataClient looks up collections and published files.
// *steamworkshop.Client implements it.
type MetadataClient interface {
	GetCollectionDetails(context.Context, ...int64) ([]steamworkshop.CollectionDetails, error)
	GetPublishedFileDetails(context.Context, ...int64) ([]steamworkshop.PublishedFileDetails, error)
}

var _ MetadataClient = new(steamworkshop.Client)

// FileMapping maps workshop item IDs to the
// filename each should be given on disk.
type FileMapping map[int64]string

// ItemIDs returns the keys of m in ascending order.
func (m FileMapping) ItemIDs() []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// ResolveCollection returns the IDs of the items in the given
// collection in the order the API returns them. Duplicates are kept.
func ResolveCollection(ctx context.Context, client MetadataClient, collectionID int64) ([]int64, error) {
	details, err := client.GetCollectionDetails(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("get collection %d details: %w", collectionID, err)
	}

	if len(details) == 0 {
		return nil, fmt.Errorf("get collection %d details: %w", collectionID,
			&steamworkshop.MissingFieldError{Field: "response.collectiondetails[0]"},
		)
	}

	itemIDs := make([]int64, len(details[0].Children))
	for i, child := range details[0].Children {
		itemIDs[i] = child.PublishedFileID
	}

	LoggerFrom(ctx).Info("resolved collection", "collectionID", collectionID, "items", len(itemIDs))

	return itemIDs, nil
}

// ResolveFileMapping looks up the details of every given item in
// a single request and maps each to its filename, falling back to
// its title. Items with neither are logged and left out.
func ResolveFileMapping(ctx context.Context, client MetadataClient, itemIDs []int64) (FileMapping, error) {
	var (
		log     = LoggerFrom(ctx)
		mapping = FileMapping{}
	)

	if len(itemIDs) == 0 {
		return mapping, nil
	}

	details, err := client.GetPublishedFileDetails(ctx, itemIDs...)
	if err != nil {
		return nil, fmt.Errorf("get published file details: %w", err)
	}

	for _, d := range details {
		if d.PublishedFileID == 0 {
			log.Warn("skipping published file details without an ID")
			continue
		}

		if name := cleanFilename(d.Filename); name != "" {
			mapping[d.PublishedFileID] = name
		} else if name := cleanFilename(titleReplacer.Replace(d.Title)); name != "" {
			log.Info("no filename, falling back to title", "itemID", d.PublishedFileID, "title", name)
			mapping[d.PublishedFileID] = name
		} else {
			log.Warn("no filename associated with item", "itemID", d.PublishedFileID)
		}
	}

	return mapping, nil
}

// titleReplacer keeps a title in one piece
// when it is used as a filename.
var titleReplacer = strings.NewReplacer("/", "_", "\\", "_")

// cleanFilename reduces a name reported by the API, which may be a
// path such as "mymissions/alpha.vm", to a name that stays within
// the destination directory. It returns "" if no such name exists.
func cleanFilename(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))

	switch name {
	case ".", "..", "/":
		return ""
	}

	return name
}
