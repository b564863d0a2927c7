package workshopsync_test

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/frantjc/workshopsync"
	"github.com/frantjc/workshopsync/steamworkshop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const collectionID = 1730420775

// newSteamWebAPI serves a collection of the given children and
// the given published file details.
func newSteamWebAPI(t *testing.T, collection, details string) *steamworkshop.Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/ISteamRemoteStorage/GetCollectionDetails/v1/":
			_, _ = w.Write([]byte(collection))
		case "/ISteamRemoteStorage/GetPublishedFileDetails/v1/":
			_, _ = w.Write([]byte(details))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	return steamworkshop.NewClient(
		steamworkshop.WithURL(u),
		steamworkshop.WithHTTPClient(srv.Client()),
	)
}

const (
	alphaBravoCollection = `{"response":{"result":1,"resultcount":1,"collectiondetails":[{"publishedfileid":"1730420775","result":1,"children":[{"publishedfileid":"111","sortorder":1,"filetype":0},{"publishedfileid":"222","sortorder":2,"filetype":0}]}]}}`
	alphaBravoDetails    = `{"response":{"result":1,"resultcount":2,"publishedfiledetails":[{"publishedfileid":"111","result":1,"filename":"alpha.vm","title":"Alpha"},{"publishedfileid":"222","result":1,"filename":"bravo.vm","title":"Bravo"}]}}`
)

func TestSync(t *testing.T) {
	var (
		ctx, buf = logBuffer(t)
		cfg      = newConfig(t)
		client   = newSteamWebAPI(t, alphaBravoCollection, alphaBravoDetails)
		runner   = &fakeRunner{}
	)

	runner.run = func(_ []string) error {
		// Only 111 downloads successfully.
		stage(t, cfg, 111, "1234567_legacy.bin", "alpha")
		return nil
	}

	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.CacheFilePath(appID)), 0755))
	require.NoError(t, os.WriteFile(cfg.CacheFilePath(appID), []byte(`"AppWorkshop" {}`), 0644))

	report, err := workshopsync.Sync(ctx, cfg,
		&workshopsync.Request{AppID: appID, CollectionID: collectionID, Username: "username"},
		workshopsync.WithClient(client),
		workshopsync.WithRunner(runner),
	)
	require.NoError(t, err)
	assert.Equal(t, []int64{111}, report.Moved)
	assert.Equal(t, []int64{222}, report.Failed)

	require.Len(t, runner.invocations, 1)
	args := strings.Join(runner.invocations[0].args, " ")
	assert.Contains(t, args, "+workshop_download_item 107410 111")
	assert.Contains(t, args, "+workshop_download_item 107410 222")

	assert.NoFileExists(t, cfg.CacheFilePath(appID))
	assert.Equal(t, "alpha", readFile(t, filepath.Join(cfg.DestinationDir, "alpha.vm")))
	assert.NoFileExists(t, filepath.Join(cfg.DestinationDir, "bravo.vm"))

	assert.Equal(t, 1, countLevel(buf, slog.LevelError))
	assert.Contains(t, buf.String(), "failed to download bravo.vm")
}

func TestSync_Idempotent(t *testing.T) {
	var (
		ctx, _ = logBuffer(t)
		cfg    = newConfig(t)
		client = newSteamWebAPI(t, alphaBravoCollection, alphaBravoDetails)
		runner = &fakeRunner{
			run: func(_ []string) error {
				stage(t, cfg, 111, "a.bin", "alpha")
				stage(t, cfg, 222, "b.bin", "bravo")
				return nil
			},
		}
		req = &workshopsync.Request{AppID: appID, CollectionID: collectionID, Username: "username"}
	)

	snapshot := func() map[string]string {
		entries, err := os.ReadDir(cfg.DestinationDir)
		require.NoError(t, err)

		files := map[string]string{}
		for _, entry := range entries {
			files[entry.Name()] = readFile(t, filepath.Join(cfg.DestinationDir, entry.Name()))
		}

		return files
	}

	for i := range 2 {
		report, err := workshopsync.Sync(ctx, cfg, req, workshopsync.WithClient(client), workshopsync.WithRunner(runner))
		require.NoError(t, err, fmt.Sprint("run ", i))
		assert.Equal(t, []int64{111, 222}, report.Moved)
		assert.Equal(t, map[string]string{"alpha.vm": "alpha", "bravo.vm": "bravo"}, snapshot())
	}

	assert.Len(t, runner.invocations, 2)
}

func TestSync_MalformedCollection(t *testing.T) {
	var (
		ctx, _ = logBuffer(t)
		cfg    = newConfig(t)
		client = newSteamWebAPI(t, `{"response":{"collectiondetails":[{"publishedfileid":"1730420775","result":9}]}}`, alphaBravoDetails)
		runner = &fakeRunner{}
	)

	_, err := workshopsync.Sync(ctx, cfg,
		&workshopsync.Request{AppID: appID, CollectionID: collectionID},
		workshopsync.WithClient(client),
		workshopsync.WithRunner(runner),
	)
	missingFieldErr := &steamworkshop.MissingFieldError{}
	require.True(t, errors.As(err, &missingFieldErr))
	assert.Contains(t, missingFieldErr.Field, "children")
	assert.Empty(t, runner.invocations)
}

func TestSync_MalformedDetails(t *testing.T) {
	var (
		ctx, _ = logBuffer(t)
		cfg    = newConfig(t)
		client = newSteamWebAPI(t, alphaBravoCollection, `{"response":{"result":1}}`)
		runner = &fakeRunner{}
	)

	_, err := workshopsync.Sync(ctx, cfg,
		&workshopsync.Request{AppID: appID, CollectionID: collectionID},
		workshopsync.WithClient(client),
		workshopsync.WithRunner(runner),
	)
	missingFieldErr := &steamworkshop.MissingFieldError{}
	require.True(t, errors.As(err, &missingFieldErr))
	assert.Equal(t, "response.publishedfiledetails", missingFieldErr.Field)
	assert.Empty(t, runner.invocations)
}

func TestSync_StatusError(t *testing.T) {
	var (
		ctx, _ = logBuffer(t)
		cfg    = newConfig(t)
		runner = &fakeRunner{}
		srv    = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
	)
	defer srv.Close()

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	_, err = workshopsync.Sync(ctx, cfg,
		&workshopsync.Request{AppID: appID, CollectionID: collectionID},
		workshopsync.WithClient(steamworkshop.NewClient(steamworkshop.WithURL(u))),
		workshopsync.WithRunner(runner),
	)
	statusErr := &steamworkshop.StatusError{}
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	assert.Empty(t, runner.invocations)
}

func TestSync_DownloadFails(t *testing.T) {
	var (
		ctx, _      = logBuffer(t)
		cfg         = newConfig(t)
		client      = newSteamWebAPI(t, alphaBravoCollection, alphaBravoDetails)
		errSteamcmd = errors.New("exit status 8")
		runner      = &fakeRunner{
			run: func(_ []string) error {
				stage(t, cfg, 111, "a.bin", "alpha")
				return errSteamcmd
			},
		}
	)

	_, err := workshopsync.Sync(ctx, cfg,
		&workshopsync.Request{AppID: appID, CollectionID: collectionID},
		workshopsync.WithClient(client),
		workshopsync.WithRunner(runner),
	)
	assert.True(t, errors.Is(err, errSteamcmd))
	// Nothing is moved once steamcmd fails.
	assert.NoFileExists(t, filepath.Join(cfg.DestinationDir, "alpha.vm"))
}

func TestSync_OnlyNamedItemsDownloaded(t *testing.T) {
	var (
		ctx, buf = logBuffer(t)
		cfg      = newConfig(t)
		client   = newSteamWebAPI(t, alphaBravoCollection,
			`{"response":{"publishedfiledetails":[{"publishedfileid":"111","filename":"alpha.vm"},{"publishedfileid":"222","filename":"","title":""}]}}`,
		)
		runner = &fakeRunner{}
	)

	report, err := workshopsync.Sync(ctx, cfg,
		&workshopsync.Request{AppID: appID, CollectionID: collectionID},
		workshopsync.WithClient(client),
		workshopsync.WithRunner(runner),
	)
	require.NoError(t, err)
	assert.Equal(t, []int64{111}, report.Failed)

	require.Len(t, runner.invocations, 1)
	args := strings.Join(runner.invocations[0].args, " ")
	assert.Contains(t, args, "+workshop_download_item 107410 111")
	assert.NotContains(t, args, "+workshop_download_item 107410 222")
	assert.Contains(t, buf.String(), "no filename associated with item")
}

func TestSync_InvalidConfig(t *testing.T) {
	ctx, _ := logBuffer(t)

	_, err := workshopsync.Sync(ctx, &workshopsync.Config{DestinationDir: t.TempDir()}, &workshopsync.Request{})
	assert.Error(t, err)

	_, err = workshopsync.Sync(ctx, &workshopsync.Config{StagingDir: t.TempDir()}, &workshopsync.Request{})
	assert.Error(t, err)

	_, err = workshopsync.Sync(ctx, &workshopsync.Config{
		StagingDir:     t.TempDir(),
		DestinationDir: t.TempDir(),
		Ambiguous:      "newest",
	}, &workshopsync.Request{})
	assert.Error(t, err)
}
