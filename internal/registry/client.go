package registry

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/praguedigital/leadgen-cli/internal/model"
	"github.com/praguedigital/leadgen-cli/pkg/ares"
	"github.com/praguedigital/leadgen-cli/pkg/justice"
)

// Client looks up legal entities across ARES (structured JSON) and the
// obchodní rejstřík (unstructured HTML). Every operation degrades to its
// not-found result on failure; none of them propagate errors.
type Client struct {
	ares    ares.Client
	justice justice.Client
}

// NewClient creates a registry client over the two upstream registries.
func NewClient(aresClient ares.Client, justiceClient justice.Client) *Client {
	return &Client{
		ares:    aresClient,
		justice: justiceClient,
	}
}

// Close releases both underlying clients.
func (c *Client) Close() {
	c.ares.Close()
	c.justice.Close()
}

// SearchByName looks a company up in ARES by business name and returns a
// registry-sourced prospect built from the first match, or nil when
// nothing matches or the lookup fails.
func (c *Client) SearchByName(ctx context.Context, name string) *model.Prospect {
	if name == "" {
		return nil
	}

	resp, err := c.ares.SearchByName(ctx, name)
	if err != nil {
		zap.L().Warn("ares name search failed", zap.String("name", name), zap.Error(err))
		return nil
	}
	if len(resp.Subjects) == 0 {
		zap.L().Debug("no ares match", zap.String("name", name))
		return nil
	}

	return subjectToProspect(resp.Subjects[0])
}

// SearchByICO normalizes the identifier and looks the subject up directly.
// An identifier that does not normalize to eight digits short-circuits to
// nil without a network call.
func (c *Client) SearchByICO(ctx context.Context, ico string) *model.Prospect {
	clean, err := NormalizeICO(ico)
	if err != nil {
		zap.L().Warn("invalid ico", zap.String("ico", ico), zap.Error(err))
		return nil
	}

	subject, err := c.ares.Subject(ctx, clean)
	if err != nil {
		if eris.Is(err, ares.ErrNotFound) {
			zap.L().Debug("ico not in ares", zap.String("ico", clean))
		} else {
			zap.L().Warn("ares ico lookup failed", zap.String("ico", clean), zap.Error(err))
		}
		return nil
	}

	return subjectToProspect(*subject)
}

// Owners fetches the rejstřík page for an IČO and extracts owners from it.
// Returns an empty slice for invalid identifiers and on any failure.
func (c *Client) Owners(ctx context.Context, ico string) []model.Owner {
	clean, err := NormalizeICO(ico)
	if err != nil {
		zap.L().Warn("invalid ico", zap.String("ico", ico), zap.Error(err))
		return nil
	}

	page, err := c.justice.CompanyPage(ctx, clean)
	if err != nil {
		zap.L().Warn("rejstrik page fetch failed", zap.String("ico", clean), zap.Error(err))
		return nil
	}

	return ExtractOwners(page, clean)
}

// Enrich augments a prospect with registry data in place. The only entry
// point is a name lookup; when it hits, legal fields merge with
// registry-wins-when-present precedence, and owners are replaced only when
// extraction yields at least one. Enrichment never fails: on any error the
// prospect is returned as-is (possibly partially updated).
func (c *Client) Enrich(ctx context.Context, p *model.Prospect) *model.Prospect {
	if p == nil || p.Name == "" {
		return p
	}

	registryRecord := c.SearchByName(ctx, p.Name)
	Merge(p, registryRecord)

	if p.ICO != "" {
		if owners := c.Owners(ctx, p.ICO); len(owners) > 0 {
			p.Owners = owners
		}
	}

	return p
}

// subjectToProspect builds a registry-sourced prospect from an ARES subject.
func subjectToProspect(s ares.Subject) *model.Prospect {
	p, ok := model.NewProspect(s.LegalName(), model.SourceARES)
	if !ok {
		return nil
	}

	p.ICO = s.ICO
	p.LegalName = s.LegalName()
	p.Status = s.Status()

	if s.Established != "" {
		if t, err := parseRegistryDate(s.Established); err == nil {
			p.RegistrationDate = &t
		}
	}

	return p
}

// parseRegistryDate accepts the date shapes ARES emits.
func parseRegistryDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, eris.Errorf("registry: unparseable date %q", s)
}
