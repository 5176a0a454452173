// Package finder orchestrates discovery and enrichment into a final
// prospect list.
package finder

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/praguedigital/leadgen-cli/internal/discovery"
	"github.com/praguedigital/leadgen-cli/internal/model"
)

// categoryQueries maps a lead category to the search phrases it expands
// to. Unmapped categories are searched verbatim.
var categoryQueries = map[string][]string{
	"beauty_salon": {
		"kadeřnictví Praha",
		"kosmetika Praha",
		"manikúra Praha",
		"pedikúra Praha",
	},
	"spa":        {"wellness Praha", "masáže Praha", "spa Praha"},
	"restaurant": {"restaurace Praha", "kavárna Praha"},
	"fitness":    {"fitness Praha", "posilovna Praha"},
	"tourism":    {"turistické služby Praha", "cestovní kancelář Praha"},
}

// Categories returns the known category names.
func Categories() []string {
	names := make([]string, 0, len(categoryQueries))
	for name := range categoryQueries {
		names = append(names, name)
	}
	return names
}

// Searcher yields prospects for a place search request.
type Searcher interface {
	SearchPlaces(ctx context.Context, req discovery.SearchRequest) []model.Prospect
}

// Enricher augments a prospect with registry data in place.
type Enricher interface {
	Enrich(ctx context.Context, p *model.Prospect) *model.Prospect
}

// Finder fans categories out into place searches and sequentially enriches
// the results under a fixed minimum spacing toward the registry.
type Finder struct {
	searcher Searcher
	enricher Enricher
	limiter  *rate.Limiter
	dedupe   bool
}

// Option configures a Finder.
type Option func(*Finder)

// WithCooldown sets the minimum spacing between registry enrichments.
// Zero disables the wait.
func WithCooldown(d time.Duration) Option {
	return func(f *Finder) {
		if d > 0 {
			f.limiter = rate.NewLimiter(rate.Every(d), 1)
		} else {
			f.limiter = rate.NewLimiter(rate.Inf, 1)
		}
	}
}

// WithDedupe drops cross-query duplicates (same folded name and address)
// before the result cap is applied. Off by default: the default output
// keeps the positional concatenate-then-truncate semantics.
func WithDedupe(enabled bool) Option {
	return func(f *Finder) {
		f.dedupe = enabled
	}
}

// New creates a Finder. The default enrichment cooldown is one second.
func New(searcher Searcher, enricher Enricher, opts ...Option) *Finder {
	f := &Finder{
		searcher: searcher,
		enricher: enricher,
		limiter:  rate.NewLimiter(rate.Every(time.Second), 1),
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// FindByCategory expands a category into its search phrases, searches each
// with a per-query cap, and truncates the combined list to maxResults.
// Query iteration stops early once the cap is reached.
func (f *Finder) FindByCategory(ctx context.Context, category string, maxResults int, enrich bool) []model.Prospect {
	queries, ok := categoryQueries[category]
	if !ok {
		queries = []string{category}
	}

	perQuery := maxResults/len(queries) + 1

	var prospects []model.Prospect
	seen := make(map[string]struct{})

	for _, query := range queries {
		zap.L().Info("searching places", zap.String("category", category), zap.String("query", query))

		results := f.searcher.SearchPlaces(ctx, discovery.SearchRequest{
			Query:      query,
			MaxResults: perQuery,
		})

		if f.dedupe {
			results = dropSeen(results, seen)
		}
		prospects = append(prospects, results...)

		if len(prospects) >= maxResults {
			prospects = prospects[:maxResults]
			break
		}
	}

	if enrich {
		prospects = f.EnrichAll(ctx, prospects)
	}
	return prospects
}

// FindByQuery searches a raw query directly.
func (f *Finder) FindByQuery(ctx context.Context, query string, maxResults int, enrich bool) []model.Prospect {
	zap.L().Info("searching places", zap.String("query", query))

	prospects := f.searcher.SearchPlaces(ctx, discovery.SearchRequest{
		Query:      query,
		MaxResults: maxResults,
	})

	if enrich {
		prospects = f.EnrichAll(ctx, prospects)
	}
	return prospects
}

// EnrichAll enriches prospects one at a time, each behind the registry
// cooldown. A failed enrichment keeps the original prospect.
func (f *Finder) EnrichAll(ctx context.Context, prospects []model.Prospect) []model.Prospect {
	zap.L().Info("enriching prospects with registry data", zap.Int("count", len(prospects)))

	enriched := make([]model.Prospect, 0, len(prospects))
	for i := range prospects {
		if err := f.limiter.Wait(ctx); err != nil {
			zap.L().Warn("enrichment cancelled", zap.Error(err))
			enriched = append(enriched, prospects[i:]...)
			break
		}

		p := prospects[i]
		f.enricher.Enrich(ctx, &p)
		enriched = append(enriched, p)
	}
	return enriched
}

// dropSeen filters prospects whose dedupe key was already emitted.
func dropSeen(prospects []model.Prospect, seen map[string]struct{}) []model.Prospect {
	out := prospects[:0]
	for _, p := range prospects {
		key := dedupeKey(p)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}
