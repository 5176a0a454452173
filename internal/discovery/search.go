// Package discovery turns free-text queries into normalized business
// prospects via the Google Places API.
package discovery

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/praguedigital/leadgen-cli/internal/model"
	"github.com/praguedigital/leadgen-cli/pkg/places"
)

const (
	// defaultLocation anchors searches to the Prague city center.
	defaultLocation = "50.0755,14.4378"
	// defaultRadius is the search radius in meters.
	defaultRadius = 20000
	// defaultPageDelay is the wait before requesting a continuation page.
	// Requesting immediately returns INVALID_REQUEST while the token
	// activates upstream.
	defaultPageDelay = 2 * time.Second
)

// SearchRequest holds the search parameters. Location and Radius fall back
// to the searcher's configured defaults when zero.
type SearchRequest struct {
	Query      string
	Location   string
	Radius     int
	Type       string // optional Places type filter
	MaxResults int
}

// Searcher performs paginated place searches and converts raw results to
// prospects. Transport failures are logged and degrade to partial results;
// none of its methods return an error.
type Searcher struct {
	client    places.Client
	pageDelay time.Duration
	location  string
	radius    int
	cache     *searchCache
}

// SearcherOption configures a Searcher.
type SearcherOption func(*Searcher)

// WithPageDelay overrides the continuation-page delay.
func WithPageDelay(d time.Duration) SearcherOption {
	return func(s *Searcher) {
		s.pageDelay = d
	}
}

// WithDefaultLocation overrides the fallback search center ("lat,lng")
// used when a request carries none.
func WithDefaultLocation(location string) SearcherOption {
	return func(s *Searcher) {
		if location != "" {
			s.location = location
		}
	}
}

// WithDefaultRadius overrides the fallback search radius in meters.
func WithDefaultRadius(meters int) SearcherOption {
	return func(s *Searcher) {
		if meters > 0 {
			s.radius = meters
		}
	}
}

// WithCacheTTL enables in-memory caching of search results for the given
// duration. Zero disables caching.
func WithCacheTTL(ttl time.Duration) SearcherOption {
	return func(s *Searcher) {
		if ttl > 0 {
			s.cache = newSearchCache(ttl)
		}
	}
}

// NewSearcher creates a Searcher backed by the given Places client.
func NewSearcher(client places.Client, opts ...SearcherOption) *Searcher {
	s := &Searcher{
		client:    client,
		pageDelay: defaultPageDelay,
		location:  defaultLocation,
		radius:    defaultRadius,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// SearchPlaces searches for places matching the request and returns at
// most req.MaxResults prospects. Pagination stops once the cap is reached,
// the upstream stops returning a continuation token, or the upstream
// status is not OK.
func (s *Searcher) SearchPlaces(ctx context.Context, req SearchRequest) []model.Prospect {
	if req.Location == "" {
		req.Location = s.location
	}
	if req.Radius <= 0 {
		req.Radius = s.radius
	}
	if req.MaxResults <= 0 {
		return nil
	}

	if s.cache != nil {
		if cached, ok := s.cache.get(req.Query, req.Location, req.MaxResults); ok {
			return cached
		}
	}

	log := zap.L().With(zap.String("query", req.Query))

	var prospects []model.Prospect
	pageToken := ""

	for len(prospects) < req.MaxResults {
		if pageToken != "" {
			select {
			case <-ctx.Done():
				log.Warn("search cancelled", zap.Error(ctx.Err()))
				return prospects
			case <-time.After(s.pageDelay):
			}
		}

		resp, err := s.client.TextSearch(ctx, places.TextSearchRequest{
			Query:     req.Query,
			Location:  req.Location,
			Radius:    req.Radius,
			Type:      req.Type,
			PageToken: pageToken,
		})
		if err != nil {
			log.Warn("text search failed", zap.Error(err))
			break
		}

		if resp.Status != places.StatusOK {
			log.Warn("places api status not ok", zap.String("status", resp.Status))
			break
		}

		for _, place := range resp.Results {
			if len(prospects) >= req.MaxResults {
				break
			}
			if p, ok := placeToProspect(place, model.SourceGoogleMaps); ok {
				prospects = append(prospects, *p)
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	if s.cache != nil && len(prospects) > 0 {
		// A search that stopped short of the cap exhausted the upstream;
		// one that filled the cap may have left results unfetched.
		s.cache.set(req.Query, req.Location, prospects, len(prospects) < req.MaxResults)
	}

	return prospects
}

// PlaceDetails looks up a single place by its place_id. Returns nil when
// the place is not found or any transport error occurs.
func (s *Searcher) PlaceDetails(ctx context.Context, placeID string) *model.Prospect {
	if placeID == "" {
		return nil
	}

	resp, err := s.client.Details(ctx, placeID)
	if err != nil {
		zap.L().Warn("place details failed", zap.String("place_id", placeID), zap.Error(err))
		return nil
	}

	if resp.Status != places.StatusOK || resp.Result == nil {
		zap.L().Debug("place not found", zap.String("place_id", placeID), zap.String("status", resp.Status))
		return nil
	}

	p, ok := placeToProspect(*resp.Result, model.SourceDetails)
	if !ok {
		return nil
	}
	return p
}

// placeToProspect converts a raw place record to a prospect. Records
// without a name are dropped.
func placeToProspect(place places.Place, source model.Source) (*model.Prospect, bool) {
	p, ok := model.NewProspect(place.Name, source)
	if !ok {
		return nil, false
	}

	p.Address = place.FormattedAddress
	p.Phone = place.FormattedPhone
	if p.Phone == "" {
		p.Phone = place.InternationalPhone
	}
	p.Website = validWebsite(place.Website)
	p.Rating = place.Rating
	p.ReviewsCount = place.UserRatingsTotal

	if place.PlaceID != "" {
		p.GoogleMapsURL = fmt.Sprintf("https://www.google.com/maps/place/?q=place_id:%s", place.PlaceID)
	}

	for _, t := range place.Types {
		if slices.Contains(model.PlaceCategories, t) {
			p.Category = t
			break
		}
	}

	return p, true
}

// validWebsite returns the raw website when it parses as an absolute
// http(s) URL, empty otherwise. The API occasionally carries junk here.
func validWebsite(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}
	return raw
}
