// Package justice provides a client for the obchodní rejstřík public
// search at or.justice.cz. The registry has no API; company pages are
// fetched as HTML and mined downstream.
package justice

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://or.justice.cz"

// Client fetches rejstřík company pages.
type Client interface {
	// CompanyPage fetches the raw HTML of a company's registry page by IČO.
	CompanyPage(ctx context.Context, ico string) (string, error)
	// Close releases idle connections held by the client.
	Close()
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an obchodní rejstřík client.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return eris.New("justice: too many redirects")
				}
				return nil
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) CompanyPage(ctx context.Context, ico string) (string, error) {
	params := url.Values{"ico": {ico}}
	reqURL := c.baseURL + "/ias/ui/rejstrik-$firma?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", eris.Wrap(err, "justice: create request")
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", eris.Wrap(err, "justice: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", eris.Wrap(err, "justice: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", eris.Errorf("justice: unexpected status %d", resp.StatusCode)
	}

	return string(body), nil
}

func (c *httpClient) Close() {
	c.http.CloseIdleConnections()
}
