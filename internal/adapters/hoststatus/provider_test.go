package hoststatus_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.scitex.ch/vessel/internal/adapters/hoststatus"
	"go.scitex.ch/vessel/internal/core/domain"
)

func TestProvider_Check(t *testing.T) {
	tests := []struct {
		name      string
		tools     []string
		available map[string]bool
		wantState domain.ExternalState
		wantIn    string
	}{
		{
			name:      "all tools present",
			tools:     []string{"rsync", "git"},
			available: map[string]bool{"rsync": true, "git": true},
			wantState: domain.ExternalOK,
		},
		{
			name:      "missing tool degrades",
			tools:     []string{"rsync", "git"},
			available: map[string]bool{"git": true},
			wantState: domain.ExternalDegraded,
			wantIn:    "rsync",
		},
		{
			name:      "no tools configured",
			tools:     nil,
			wantState: domain.ExternalOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := hoststatus.NewProvider(tt.tools)
			p.SetLookPath(func(file string) (string, error) {
				if tt.available[file] {
					return "/usr/bin/" + file, nil
				}
				return "", errors.New("not found")
			})

			status := p.Check(context.Background())
			assert.Equal(t, "host", status.Name)
			assert.Equal(t, tt.wantState, status.State)
			if tt.wantIn != "" {
				assert.Contains(t, status.Detail, tt.wantIn)
			}
		})
	}
}
