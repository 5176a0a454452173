// Package ares provides a client for the ARES economic subjects registry
// (ares.gov.cz REST API).
package ares

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://ares.gov.cz/ekonomicke-subjekty-v-be/rest"

// ErrNotFound is returned when the registry has no record for the lookup.
var ErrNotFound = eris.New("ares: subject not found")

// Client performs ARES registry lookups.
type Client interface {
	// SearchByName searches subjects by business name.
	SearchByName(ctx context.Context, name string) (*SearchResponse, error)
	// Subject fetches a single subject by its IČO. Returns ErrNotFound
	// when the registry has no such subject.
	Subject(ctx context.Context, ico string) (*Subject, error)
	// Close releases idle connections held by the client.
	Close()
}

// SearchResponse is the subject search response.
type SearchResponse struct {
	Subjects []Subject `json:"ekonomickeSubjekty"`
}

// Subject is a raw registry record.
type Subject struct {
	ICO          string `json:"ico"`
	BusinessName string `json:"obchodniJmeno"`
	Name         string `json:"nazev"`
	State        string `json:"stav"`
	SubjectState string `json:"stavSubjektu"`
	Established  string `json:"datumVzniku"` // ISO date
}

// LegalName returns the best available name for the subject.
func (s *Subject) LegalName() string {
	if s.BusinessName != "" {
		return s.BusinessName
	}
	return s.Name
}

// Status returns the best available status field.
func (s *Subject) Status() string {
	if s.State != "" {
		return s.State
	}
	return s.SubjectState
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
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

// NewClient creates an ARES registry client.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) SearchByName(ctx context.Context, name string) (*SearchResponse, error) {
	params := url.Values{
		"obchodniJmeno": {name},
		"pocet":         {"10"},
		"strana":        {"1"},
	}

	reqURL := c.baseURL + "/ekonomicke-subjekty/vyhledat?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "ares: create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "ares: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "ares: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("ares: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var result SearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, eris.Wrap(err, "ares: unmarshal response")
	}
	return &result, nil
}

func (c *httpClient) Subject(ctx context.Context, ico string) (*Subject, error) {
	reqURL := c.baseURL + "/ekonomicke-subjekty/" + url.PathEscape(ico)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "ares: create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "ares: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "ares: read response")
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("ares: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var subject Subject
	if err := json.Unmarshal(body, &subject); err != nil {
		return nil, eris.Wrap(err, "ares: unmarshal response")
	}
	return &subject, nil
}

func (c *httpClient) Close() {
	c.http.CloseIdleConnections()
}
