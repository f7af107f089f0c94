// Package dockerstatus reports the health of the Docker Compose services
// that collaborate with the active container.
package dockerstatus

import (
	"context"
	"fmt"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/client"
	"go.scitex.ch/vessel/internal/core/domain"
	"go.scitex.ch/vessel/internal/core/ports"
)

var _ ports.StatusProvider = (*Provider)(nil)

// dockerAPI is the subset of the Docker client the provider uses.
type dockerAPI interface {
	ContainerList(ctx context.Context, options container.ListOptions) ([]types.Container, error)
}

// Provider implements ports.StatusProvider against the Docker daemon.
// An unreachable daemon is reported as unknown, never as an error: status
// aggregation must not fail because a collaborator is down.
type Provider struct {
	services []string
	api      dockerAPI
	apiErr   error
}

// NewProvider creates a Docker status provider for the named compose
// services. Client construction errors are deferred to Check so that a
// host without Docker still gets a status report.
func NewProvider(services []string) *Provider {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	p := &Provider{services: services, apiErr: err}
	if err == nil {
		p.api = cli
	}
	return p
}

// Name identifies the provider in status reports.
func (p *Provider) Name() string {
	return "docker"
}

// Check inspects the configured services and summarizes their state.
func (p *Provider) Check(ctx context.Context) domain.ExternalStatus {
	if p.apiErr != nil {
		return domain.ExternalStatus{
			Name:   p.Name(),
			State:  domain.ExternalUnknown,
			Detail: "client unavailable: " + p.apiErr.Error(),
		}
	}

	var down []string
	for _, svc := range p.services {
		running, err := p.serviceRunning(ctx, svc)
		if err != nil {
			return domain.ExternalStatus{
				Name:   p.Name(),
				State:  domain.ExternalUnknown,
				Detail: "daemon unreachable: " + err.Error(),
			}
		}
		if !running {
			down = append(down, svc)
		}
	}

	if len(down) > 0 {
		return domain.ExternalStatus{
			Name:   p.Name(),
			State:  domain.ExternalDegraded,
			Detail: "not running: " + strings.Join(down, ", "),
		}
	}

	return domain.ExternalStatus{
		Name:   p.Name(),
		State:  domain.ExternalOK,
		Detail: fmt.Sprintf("%d services running", len(p.services)),
	}
}

func (p *Provider) serviceRunning(ctx context.Context, service string) (bool, error) {
	containers, err := p.api.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: filters.NewArgs(filters.Arg("name", service)),
	})
	if err != nil {
		return false, err
	}

	for _, c := range containers {
		if c.State == "running" {
			return true, nil
		}
	}
	return false, nil
}
