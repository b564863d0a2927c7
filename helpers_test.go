package workshopsync_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/frantjc/workshopsync"
	"github.com/frantjc/workshopsync/steamworkshop"
	"github.com/stretchr/testify/require"
)

const appID = 107410

// logBuffer captures everything logged through the returned Context.
func logBuffer(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()

	buf := new(bytes.Buffer)
	log := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return workshopsync.WithLogger(context.Background(), log), buf
}

func countLevel(buf *bytes.Buffer, level slog.Level) int {
	return strings.Count(buf.String(), "level="+level.String())
}

func newConfig(t *testing.T) *workshopsync.Config {
	t.Helper()

	return &workshopsync.Config{
		StagingDir:     t.TempDir(),
		DestinationDir: t.TempDir(),
		SteamcmdPath:   "steamcmd",
	}
}

// stage writes a file where `steamcmd` would download itemID to.
func stage(t *testing.T, cfg *workshopsync.Config, itemID int64, name, content string) string {
	t.Helper()

	dir := filepath.Join(cfg.StagingDir, "steamapps/workshop/content", strconv.Itoa(appID), strconv.FormatInt(itemID, 10))
	require.NoError(t, os.MkdirAll(dir, 0755))

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(b)
}

type fakeClient struct {
	collection     []steamworkshop.CollectionDetails
	collectionErr  error
	details        []steamworkshop.PublishedFileDetails
	detailsErr     error
	detailRequests [][]int64
}

func (c *fakeClient) GetCollectionDetails(_ context.Context, _ ...int64) ([]steamworkshop.CollectionDetails, error) {
	return c.collection, c.collectionErr
}

func (c *fakeClient) GetPublishedFileDetails(_ context.Context, ids ...int64) ([]steamworkshop.PublishedFileDetails, error) {
	c.detailRequests = append(c.detailRequests, ids)
	return c.details, c.detailsErr
}

var _ workshopsync.MetadataClient = new(fakeClient)
