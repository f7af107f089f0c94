// Package hoststatus reports the presence of host tools the research
// workflow depends on outside any container.
package hoststatus

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.scitex.ch/vessel/internal/core/domain"
	"go.scitex.ch/vessel/internal/core/ports"
)

var _ ports.StatusProvider = (*Provider)(nil)

// Provider implements ports.StatusProvider by resolving host tools on PATH.
type Provider struct {
	tools []string

	// lookPath is swappable for tests.
	lookPath func(file string) (string, error)
}

// NewProvider creates a host tool status provider.
func NewProvider(tools []string) *Provider {
	return &Provider{tools: tools, lookPath: exec.LookPath}
}

// Name identifies the provider in status reports.
func (p *Provider) Name() string {
	return "host"
}

// Check resolves each configured tool on PATH.
func (p *Provider) Check(_ context.Context) domain.ExternalStatus {
	var missing []string
	for _, tool := range p.tools {
		if _, err := p.lookPath(tool); err != nil {
			missing = append(missing, tool)
		}
	}

	if len(missing) > 0 {
		return domain.ExternalStatus{
			Name:   p.Name(),
			State:  domain.ExternalDegraded,
			Detail: "missing: " + strings.Join(missing, ", "),
		}
	}

	return domain.ExternalStatus{
		Name:   p.Name(),
		State:  domain.ExternalOK,
		Detail: fmt.Sprintf("%d tools available", len(p.tools)),
	}
}
