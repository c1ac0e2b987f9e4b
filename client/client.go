package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"slices"
	"time"
)

// DefaultAPIVersion is the native API version used when Options.APIVersion is empty.
const DefaultAPIVersion = "v1"

// Client talks to the native API of a single Dataverse installation. It holds
// only immutable configuration and is safe for concurrent use.
type Client struct {
	u       *url.URL
	hc      *http.Client
	options Options
	log     *slog.Logger
}

// Options configures a Client.
type Options struct {
	// APIToken is sent as the X-Dataverse-key header on every request when set.
	APIToken string

	// APIVersion selects the version segment of the native API path.
	// Defaults to DefaultAPIVersion.
	APIVersion string

	// ConnectTimeout bounds establishing the TCP connection. Zero means no limit.
	ConnectTimeout time.Duration

	// ReadTimeout bounds waiting for the response headers. Zero means no limit.
	ReadTimeout time.Duration

	// HTTPClient overrides the HTTP client. The timeouts above are ignored
	// when it is set.
	HTTPClient *http.Client

	// Logger receives a debug line per performed request when set.
	Logger *slog.Logger
}

func NewClient(baseURL string, options Options) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("could not parse base URL: %w", err)
	}

	if options.APIVersion == "" {
		options.APIVersion = DefaultAPIVersion
	}

	hc := options.HTTPClient
	if hc == nil {
		hc = &http.Client{
			Transport: &http.Transport{
				DialContext:           (&net.Dialer{Timeout: options.ConnectTimeout}).DialContext,
				ResponseHeaderTimeout: options.ReadTimeout,
			},
		}
	}

	log := options.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		u:       u,
		hc:      hc,
		options: options,
		log:     log,
	}, nil
}

// Dataset addresses one dataset by its database id.
func (c *Client) Dataset(id string) *Dataset {
	return &Dataset{c: c, id: id}
}

// DatasetByPersistentID addresses one dataset by its persistent identifier
// (e.g. a DOI like "doi:10.5072/FK2/ABC123").
func (c *Client) DatasetByPersistentID(persistentID string) *Dataset {
	return &Dataset{c: c, id: persistentID, byPersistentID: true}
}

// Dataset is a handle on a single dataset. The addressing mode is fixed at
// construction and selects the URL template family of every operation.
type Dataset struct {
	c              *Client
	id             string
	byPersistentID bool
}

// ID returns the identifier the handle was created with.
func (d *Dataset) ID() string {
	return d.id
}

// ByPersistentID reports whether the dataset is addressed by persistent identifier.
func (d *Dataset) ByPersistentID() bool {
	return d.byPersistentID
}

// url builds an operation URL below the dataset resource. By persistent
// identifier the dataset is addressed with the literal ":persistentId" path
// segment plus a persistentId query parameter; by id the id is a plain path
// segment. Sub-path segments always go between the dataset qualifier and the
// query string.
func (d *Dataset) url(trailingSlash bool, query url.Values, sub ...string) *url.URL {
	parts := []string{"api", d.c.options.APIVersion, "datasets"}
	if d.byPersistentID {
		parts = append(parts, ":persistentId")
	} else {
		parts = append(parts, d.id)
	}
	parts = append(parts, sub...)

	u := d.c.u.JoinPath(parts...)
	if trailingSlash {
		u.Path += "/"
	}

	if d.byPersistentID {
		if query == nil {
			query = url.Values{}
		}
		query.Set("persistentId", d.id)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	return u
}

func versionPath(version string) []string {
	if version == "" {
		return nil
	}
	return []string{"versions", version}
}

func (c *Client) addAPIToken(r *http.Request) {
	if c.options.APIToken != "" {
		r.Header.Set("X-Dataverse-key", c.options.APIToken)
	}
}

// do performs a single request and returns the raw response body. Status codes
// outside okStatus (200 when empty) yield a *StatusError carrying the body.
func (c *Client) do(ctx context.Context, method string, u *url.URL, body io.Reader, contentType string, okStatus ...int) (string, error) {
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	c.addAPIToken(req)

	res, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("could not perform request: %w", err)
	}

	defer res.Body.Close()

	d, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("could not read response body: %w", err)
	}

	c.log.Debug("dataverse request", "method", method, "url", u.String(), "status", res.StatusCode)

	if len(okStatus) == 0 {
		okStatus = []int{http.StatusOK}
	}

	if !slices.Contains(okStatus, res.StatusCode) {
		return "", &StatusError{StatusCode: res.StatusCode, Body: string(d)}
	}

	return string(d), nil
}
