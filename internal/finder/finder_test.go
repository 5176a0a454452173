package finder

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praguedigital/leadgen-cli/internal/discovery"
	"github.com/praguedigital/leadgen-cli/internal/model"
)

// fakeSearcher returns a fixed number of prospects per query, up to the
// requested cap, and records the requests.
type fakeSearcher struct {
	perQuery map[string][]model.Prospect
	requests []discovery.SearchRequest
}

func (f *fakeSearcher) SearchPlaces(_ context.Context, req discovery.SearchRequest) []model.Prospect {
	f.requests = append(f.requests, req)
	results := f.perQuery[req.Query]
	if len(results) > req.MaxResults {
		results = results[:req.MaxResults]
	}
	return results
}

type fakeEnricher struct {
	calls int
}

func (f *fakeEnricher) Enrich(_ context.Context, p *model.Prospect) *model.Prospect {
	f.calls++
	p.ICO = fmt.Sprintf("%08d", f.calls)
	return p
}

func prospects(names ...string) []model.Prospect {
	out := make([]model.Prospect, 0, len(names))
	for _, n := range names {
		out = append(out, model.Prospect{Name: n, Source: model.SourceGoogleMaps})
	}
	return out
}

func TestFindByCategory_PerQueryCap(t *testing.T) {
	t.Parallel()

	searcher := &fakeSearcher{perQuery: map[string][]model.Prospect{}}
	f := New(searcher, &fakeEnricher{}, WithCooldown(0))

	f.FindByCategory(context.Background(), "beauty_salon", 10, false)

	// Four queries, cap 10: each query asks for 10/4+1 = 3 results.
	require.Len(t, searcher.requests, 4)
	for _, req := range searcher.requests {
		assert.Equal(t, 3, req.MaxResults)
	}
	assert.Equal(t, "kadeřnictví Praha", searcher.requests[0].Query)
}

func TestFindByCategory_StopsOnceCapReached(t *testing.T) {
	t.Parallel()

	searcher := &fakeSearcher{perQuery: map[string][]model.Prospect{
		"wellness Praha": prospects("W1", "W2", "W3"),
		"masáže Praha":   prospects("M1", "M2", "M3"),
		"spa Praha":      prospects("S1", "S2", "S3"),
	}}
	f := New(searcher, &fakeEnricher{}, WithCooldown(0))

	// Cap 4 over three queries: per-query cap 4/3+1 = 2, so the first two
	// queries already fill the list and the third is never issued.
	got := f.FindByCategory(context.Background(), "spa", 4, false)

	require.Len(t, got, 4)
	assert.Equal(t, prospects("W1", "W2", "M1", "M2"), got)
	assert.Len(t, searcher.requests, 2)
}

func TestFindByCategory_TruncatesToMax(t *testing.T) {
	t.Parallel()

	searcher := &fakeSearcher{perQuery: map[string][]model.Prospect{
		"restaurace Praha": prospects("R1", "R2"),
		"kavárna Praha":    prospects("K1", "K2"),
	}}
	f := New(searcher, &fakeEnricher{}, WithCooldown(0))

	got := f.FindByCategory(context.Background(), "restaurant", 3, false)

	require.Len(t, got, 3)
	assert.Equal(t, "R1", got[0].Name)
	assert.Equal(t, "K1", got[2].Name)
}

func TestFindByCategory_UnknownCategorySearchedVerbatim(t *testing.T) {
	t.Parallel()

	searcher := &fakeSearcher{perQuery: map[string][]model.Prospect{
		"zubní ordinace Praha": prospects("Z1"),
	}}
	f := New(searcher, &fakeEnricher{}, WithCooldown(0))

	got := f.FindByCategory(context.Background(), "zubní ordinace Praha", 5, false)

	require.Len(t, got, 1)
	require.Len(t, searcher.requests, 1)
	assert.Equal(t, "zubní ordinace Praha", searcher.requests[0].Query)
	assert.Equal(t, 6, searcher.requests[0].MaxResults)
}

func TestFindByCategory_DuplicatesKeptByDefault(t *testing.T) {
	t.Parallel()

	dup := model.Prospect{Name: "Salon Krásy", Address: "Vodičkova 5"}
	searcher := &fakeSearcher{perQuery: map[string][]model.Prospect{
		"restaurace Praha": {dup},
		"kavárna Praha":    {dup},
	}}
	f := New(searcher, &fakeEnricher{}, WithCooldown(0))

	got := f.FindByCategory(context.Background(), "restaurant", 10, false)
	assert.Len(t, got, 2)
}

func TestFindByCategory_DedupeDropsFoldedDuplicates(t *testing.T) {
	t.Parallel()

	searcher := &fakeSearcher{perQuery: map[string][]model.Prospect{
		"restaurace Praha": {{Name: "Kavárna Slavia", Address: "Smetanovo nábřeží 2"}},
		"kavárna Praha": {
			{Name: "kavarna slavia", Address: "Smetanovo nabrezi 2"},
			{Name: "Café Louvre", Address: "Národní 22"},
		},
	}}
	f := New(searcher, &fakeEnricher{}, WithCooldown(0), WithDedupe(true))

	got := f.FindByCategory(context.Background(), "restaurant", 10, false)

	require.Len(t, got, 2)
	assert.Equal(t, "Kavárna Slavia", got[0].Name)
	assert.Equal(t, "Café Louvre", got[1].Name)
}

func TestFindByCategory_Enriches(t *testing.T) {
	t.Parallel()

	searcher := &fakeSearcher{perQuery: map[string][]model.Prospect{
		"fitness Praha": prospects("F1", "F2"),
	}}
	enricher := &fakeEnricher{}
	f := New(searcher, enricher, WithCooldown(0))

	got := f.FindByCategory(context.Background(), "fitness", 2, true)

	require.Len(t, got, 2)
	assert.Equal(t, 2, enricher.calls)
	assert.NotEmpty(t, got[0].ICO)
	assert.NotEmpty(t, got[1].ICO)
}

func TestFindByQuery(t *testing.T) {
	t.Parallel()

	searcher := &fakeSearcher{perQuery: map[string][]model.Prospect{
		"kadeřnictví Vinohrady": prospects("V1", "V2"),
	}}
	f := New(searcher, &fakeEnricher{}, WithCooldown(0))

	got := f.FindByQuery(context.Background(), "kadeřnictví Vinohrady", 5, false)

	require.Len(t, got, 2)
	require.Len(t, searcher.requests, 1)
	assert.Equal(t, 5, searcher.requests[0].MaxResults)
}

func TestEnrichAll_KeepsOriginalsOnCancel(t *testing.T) {
	t.Parallel()

	enricher := &fakeEnricher{}
	f := New(&fakeSearcher{}, enricher, WithCooldown(0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := prospects("A", "B", "C")
	got := f.EnrichAll(ctx, in)

	require.Len(t, got, 3, "cancelled enrichment still returns every prospect")
	assert.Equal(t, 0, enricher.calls)
	assert.Empty(t, got[0].ICO)
}

func TestEnrichAll_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	enricher := &fakeEnricher{}
	f := New(&fakeSearcher{}, enricher, WithCooldown(0))

	in := prospects("A")
	got := f.EnrichAll(context.Background(), in)

	require.Len(t, got, 1)
	assert.NotEmpty(t, got[0].ICO)
	assert.Empty(t, in[0].ICO, "input slice elements stay untouched")
}

func TestCategories(t *testing.T) {
	t.Parallel()

	names := Categories()
	assert.Len(t, names, 5)
	assert.Contains(t, names, "beauty_salon")
	assert.Contains(t, names, "spa")
}
