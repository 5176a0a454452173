// Package places provides a client for the Google Places legacy web
// service (text search and place details).
package places

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// StatusOK is the Places API status for a successful response.
const StatusOK = "OK"

// Client performs Google Places API operations.
type Client interface {
	// TextSearch runs a free-text place search. Pass the token from a
	// previous response in req.PageToken to fetch the next page.
	TextSearch(ctx context.Context, req TextSearchRequest) (*TextSearchResponse, error)
	// Details fetches a single place by its place_id.
	Details(ctx context.Context, placeID string) (*DetailsResponse, error)
	// Close releases idle connections held by the client.
	Close()
}

// TextSearchRequest holds the text search parameters.
type TextSearchRequest struct {
	Query     string
	Location  string // "lat,lng"
	Radius    int    // meters
	Type      string // optional type filter
	PageToken string // continuation token from a previous page
}

// TextSearchResponse is the raw text search response.
type TextSearchResponse struct {
	Status        string  `json:"status"`
	Results       []Place `json:"results"`
	NextPageToken string  `json:"next_page_token"`
}

// DetailsResponse is the raw place details response.
type DetailsResponse struct {
	Status string `json:"status"`
	Result *Place `json:"result"`
}

// Place is a raw place record as returned by the API.
type Place struct {
	PlaceID            string   `json:"place_id"`
	Name               string   `json:"name"`
	FormattedAddress   string   `json:"formatted_address"`
	FormattedPhone     string   `json:"formatted_phone_number"`
	InternationalPhone string   `json:"international_phone_number"`
	Website            string   `json:"website"`
	Rating             float64  `json:"rating"`
	UserRatingsTotal   int      `json:"user_ratings_total"`
	Types              []string `json:"types"`
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
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a Google Places API client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
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

func (c *httpClient) TextSearch(ctx context.Context, req TextSearchRequest) (*TextSearchResponse, error) {
	params := url.Values{
		"query": {req.Query},
		"key":   {c.apiKey},
	}
	if req.Location != "" {
		params.Set("location", req.Location)
	}
	if req.Radius > 0 {
		params.Set("radius", strconv.Itoa(req.Radius))
	}
	if req.Type != "" {
		params.Set("type", req.Type)
	}
	if req.PageToken != "" {
		params.Set("pagetoken", req.PageToken)
	}

	var result TextSearchResponse
	if err := c.getJSON(ctx, c.baseURL+"/textsearch/json?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *httpClient) Details(ctx context.Context, placeID string) (*DetailsResponse, error) {
	params := url.Values{
		"place_id": {placeID},
		"key":      {c.apiKey},
		"fields":   {"place_id,name,formatted_address,formatted_phone_number,international_phone_number,website,rating,user_ratings_total,types"},
	}

	var result DetailsResponse
	if err := c.getJSON(ctx, c.baseURL+"/details/json?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *httpClient) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return eris.Wrap(err, "places: create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return eris.Wrap(err, "places: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrap(err, "places: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return eris.Errorf("places: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return eris.Wrap(err, "places: unmarshal response")
	}
	return nil
}

func (c *httpClient) Close() {
	c.http.CloseIdleConnections()
}
