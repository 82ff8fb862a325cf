package assets

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"strings"

	"github.com/alexisbeaulieu97/kindred/internal/ports"
)

// MaxDocumentBytes bounds a single fetched shape document.
const MaxDocumentBytes = 1 << 20

// HTTPFetcher fetches shape documents relative to a base URL.
type HTTPFetcher struct {
	client *http.Client
	base   *url.URL
}

var _ ports.Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher builds a fetcher rooted at base. A nil client uses
// http.DefaultClient; per-request deadlines come from the caller's context.
func NewHTTPFetcher(base string, client *http.Client) (*HTTPFetcher, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute http(s)", base)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{client: client, base: u}, nil
}

func (f *HTTPFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "fetch", Path: name, Err: fs.ErrInvalid}
	}
	target := f.base.JoinPath(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "image/svg+xml, text/xml;q=0.9, */*;q=0.1")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", target, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("get %s: %w", target, fs.ErrNotExist)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("get %s: unexpected status %s", target, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxDocumentBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", target, err)
	}
	if len(data) > MaxDocumentBytes {
		return nil, fmt.Errorf("get %s: document exceeds %d bytes", target, MaxDocumentBytes)
	}
	return data, nil
}

func (f *HTTPFetcher) Describe() string {
	return f.base.String()
}
