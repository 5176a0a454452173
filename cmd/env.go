package main

import (
	"time"

	"github.com/rotisserie/eris"

	"github.com/praguedigital/leadgen-cli/internal/config"
	"github.com/praguedigital/leadgen-cli/internal/discovery"
	"github.com/praguedigital/leadgen-cli/internal/finder"
	"github.com/praguedigital/leadgen-cli/internal/registry"
	"github.com/praguedigital/leadgen-cli/pkg/ares"
	"github.com/praguedigital/leadgen-cli/pkg/justice"
	"github.com/praguedigital/leadgen-cli/pkg/places"
)

// pipelineEnv bundles the wired clients for a command invocation.
type pipelineEnv struct {
	finder   *finder.Finder
	searcher *discovery.Searcher
	registry *registry.Client
	places   places.Client
}

// close releases every client; safe on all exit paths via defer.
func (e *pipelineEnv) close() {
	e.places.Close()
	e.registry.Close()
}

// initPipeline wires the search and registry clients from config.
func initPipeline(cfg *config.Config, dedupe bool) (*pipelineEnv, error) {
	if cfg.Places.APIKey == "" {
		return nil, eris.New("places api key is required (set LEADGEN_PLACES_API_KEY or places.api_key)")
	}

	placesClient := places.NewClient(cfg.Places.APIKey, places.WithBaseURL(cfg.Places.BaseURL))

	searcherOpts := []discovery.SearcherOption{
		discovery.WithPageDelay(time.Duration(cfg.Places.PageDelaySecs) * time.Second),
		discovery.WithDefaultLocation(cfg.Places.Location),
		discovery.WithDefaultRadius(cfg.Places.RadiusMeters),
	}
	if cfg.Places.CacheTTLMins > 0 {
		searcherOpts = append(searcherOpts, discovery.WithCacheTTL(time.Duration(cfg.Places.CacheTTLMins)*time.Minute))
	}
	searcher := discovery.NewSearcher(placesClient, searcherOpts...)

	registryClient := registry.NewClient(
		ares.NewClient(ares.WithBaseURL(cfg.Registry.ARESBaseURL)),
		justice.NewClient(justice.WithBaseURL(cfg.Registry.JusticeBaseURL)),
	)

	f := finder.New(searcher, registryClient,
		finder.WithCooldown(time.Duration(cfg.Finder.EnrichCooldownSecs)*time.Second),
		finder.WithDedupe(dedupe || cfg.Finder.Dedupe),
	)

	return &pipelineEnv{
		finder:   f,
		searcher: searcher,
		registry: registryClient,
		places:   placesClient,
	}, nil
}
