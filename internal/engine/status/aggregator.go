// Package status composes catalog state with external collaborator health
// into a single read-only report.
package status

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"go.scitex.ch/vessel/internal/core/domain"
	"go.scitex.ch/vessel/internal/core/ports"
)

// providerTimeout bounds each collaborator check so one hung daemon cannot
// stall the whole report.
const providerTimeout = 5 * time.Second

// Aggregator builds status reports. Collaborator checks run concurrently
// and an unreachable collaborator degrades to unknown rather than failing
// the report.
type Aggregator struct {
	store     ports.CatalogStore
	verifier  ports.Verifier
	providers []ports.StatusProvider
}

// NewAggregator creates a status aggregator over the given providers.
func NewAggregator(store ports.CatalogStore, verifier ports.Verifier, providers ...ports.StatusProvider) *Aggregator {
	return &Aggregator{
		store:     store,
		verifier:  verifier,
		providers: providers,
	}
}

// Report assembles the current status snapshot.
func (a *Aggregator) Report(ctx context.Context) (*domain.StatusReport, error) {
	catalog, err := a.store.Load()
	if err != nil {
		return nil, err
	}

	report := &domain.StatusReport{
		VersionCount: len(catalog.Versions),
	}

	if active, ok := catalog.ActiveVersion(); ok {
		report.Active = &active
		report.DefDrift = a.defDrift(active)
	}
	if previous, ok := catalog.PreviousVersion(); ok {
		report.Previous = &previous
	}

	report.External = a.collectExternal(ctx)
	return report, nil
}

// defDrift checks whether the active version's definition file still
// matches the hash recorded at registration. Only the definition file is
// hashed; a full Verify would re-read the artifact on every refresh.
func (a *Aggregator) defDrift(v domain.Version) *domain.Check {
	check := a.verifier.VerifyDefOrigin(v)
	return &check
}

// collectExternal polls every provider concurrently with a bounded timeout.
// Provider checks never return errors; the error group only propagates
// context cancellation.
func (a *Aggregator) collectExternal(ctx context.Context) []domain.ExternalStatus {
	statuses := make([]domain.ExternalStatus, len(a.providers))

	g, gctx := errgroup.WithContext(ctx)
	for i, provider := range a.providers {
		g.Go(func() error {
			checkCtx, cancel := context.WithTimeout(gctx, providerTimeout)
			defer cancel()
			statuses[i] = provider.Check(checkCtx)
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Name < statuses[j].Name
	})
	return statuses
}
