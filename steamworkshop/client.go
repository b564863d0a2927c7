package steamworkshop

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	DefaultURL = func() *url.URL {
		u, err := url.Parse("https://api.steampowered.com/")
		if err != nil {
			panic(err)
		}

		return u
	}()
	DefaultClient = NewClient()
)

const (
	iSteamRemoteStorage = "ISteamRemoteStorage"
)

type ClientOpt func(*Client)

// WithHTTPClient makes the Client send requests through httpClient.
// WithTimeout, if also given, sets httpClient.Timeout.
func WithHTTPClient(httpClient *http.Client) ClientOpt {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithURL(u *url.URL) ClientOpt {
	return func(c *Client) {
		c.apiURL = u
	}
}

// WithTimeout bounds each request. Zero means no timeout
// beyond that of the underlying *http.Client.
func WithTimeout(timeout time.Duration) ClientOpt {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func NewClient(opts ...ClientOpt) *Client {
	c := &Client{apiURL: DefaultURL}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient != nil {
		c.resty = resty.NewWithClient(c.httpClient)
	} else {
		c.resty = resty.New()
	}
	if c.timeout > 0 {
		c.resty.SetTimeout(c.timeout)
	}

	return c
}

// Client talks to the ISteamRemoteStorage interface
// of the Steam Web API. It never retries.
type Client struct {
	apiURL     *url.URL
	httpClient *http.Client
	timeout    time.Duration
	resty      *resty.Client
}

// GetCollectionDetails looks up the children of each of the given collections.
func (c *Client) GetCollectionDetails(ctx context.Context, collectionIDs ...int64) ([]CollectionDetails, error) {
	form := map[string]string{
		"collectioncount": strconv.Itoa(len(collectionIDs)),
	}
	for i, id := range collectionIDs {
		form[fmt.Sprintf("publishedfileids[%d]", i)] = strconv.FormatInt(id, 10)
	}

	res := &GetCollectionDetailsResponse{}
	if err := c.post(ctx, "GetCollectionDetails", form, res); err != nil {
		return nil, err
	}

	if err := res.Validate(); err != nil {
		return nil, err
	}

	return res.Response.CollectionDetails, nil
}

// GetPublishedFileDetails looks up the details of each of the given
// published files in a single request.
func (c *Client) GetPublishedFileDetails(ctx context.Context, publishedFileIDs ...int64) ([]PublishedFileDetails, error) {
	form := map[string]string{
		"itemcount": strconv.Itoa(len(publishedFileIDs)),
	}
	for i, id := range publishedFileIDs {
		form[fmt.Sprintf("publishedfileids[%d]", i)] = strconv.FormatInt(id, 10)
	}

	res := &GetPublishedFileDetailsResponse{}
	if err := c.post(ctx, "GetPublishedFileDetails", form, res); err != nil {
		return nil, err
	}

	if err := res.Validate(); err != nil {
		return nil, err
	}

	return res.Response.PublishedFileDetails, nil
}

func (c *Client) post(ctx context.Context, method string, form map[string]string, v any) error {
	u := fmt.Sprintf("%s/", c.apiURL.JoinPath(iSteamRemoteStorage, method, "v1").String())

	// The Steam Web API does not always label its JSON as such.
	res, err := c.resty.R().
		SetContext(ctx).
		SetFormData(form).
		SetResult(v).
		ForceContentType("application/json").
		Post(u)
	if err != nil {
		return fmt.Errorf("POST %s: %w", u, err)
	}

	if !res.IsSuccess() {
		return &StatusError{
			Method:     http.MethodPost,
			URL:        u,
			StatusCode: res.StatusCode(),
		}
	}

	return nil
}
