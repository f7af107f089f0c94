package commands

import (
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.scitex.ch/vessel/internal/core/domain"
)

func TestRenderVerification(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name       string
		result     *domain.VerificationResult
		goldenName string
	}{
		{
			name: "all pass",
			result: &domain.VerificationResult{
				VersionID: "v1.2.0",
				Artifact:  domain.Check{Status: domain.CheckPass},
				DefOrigin: domain.Check{Status: domain.CheckPass},
				Locks: map[string]domain.Check{
					"requirements.lock": {Status: domain.CheckPass},
				},
				Overall: true,
			},
			goldenName: "verify_pass",
		},
		{
			name: "definition drift fails",
			result: &domain.VerificationResult{
				VersionID: "v1.2.0",
				Artifact:  domain.Check{Status: domain.CheckPass},
				DefOrigin: domain.Check{Status: domain.CheckFail, Detail: "hash mismatch: current=aa recorded=bb"},
				Locks: map[string]domain.Check{
					"pip.lock":          {Status: domain.CheckSkip, Detail: "no hash recorded"},
					"requirements.lock": {Status: domain.CheckPass},
				},
				Overall: false,
			},
			goldenName: "verify_drift",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := goldie.New(t)
			g.Assert(t, tt.goldenName, []byte(RenderVerification(tt.result)))
		})
	}
}

func TestRenderStatus(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	active := domain.Version{ID: "v1.2.0"}
	previous := domain.Version{ID: "v1.1.0"}

	tests := []struct {
		name       string
		report     *domain.StatusReport
		goldenName string
	}{
		{
			name: "full report",
			report: &domain.StatusReport{
				Active:       &active,
				Previous:     &previous,
				VersionCount: 3,
				DefDrift:     &domain.Check{Status: domain.CheckPass},
				External: []domain.ExternalStatus{
					{Name: "docker", State: domain.ExternalOK, Detail: "2 services running"},
					{Name: "host", State: domain.ExternalDegraded, Detail: "missing: rsync"},
				},
			},
			goldenName: "status_full",
		},
		{
			name:       "empty catalog",
			report:     &domain.StatusReport{},
			goldenName: "status_empty",
		},
		{
			name: "unreachable collaborator",
			report: &domain.StatusReport{
				Active:       &active,
				VersionCount: 1,
				DefDrift:     &domain.Check{Status: domain.CheckPass},
				External: []domain.ExternalStatus{
					{Name: "docker", State: domain.ExternalUnknown, Detail: "daemon unreachable"},
				},
			},
			goldenName: "status_unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := goldie.New(t)
			g.Assert(t, tt.goldenName, []byte(RenderStatus(tt.report)))
		})
	}
}

func TestRenderSwitchResult(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name   string
		result domain.SwitchResult
		want   string
	}{
		{
			name:   "switch with previous",
			result: domain.SwitchResult{Active: "v2", Previous: "v1", Changed: true},
			want:   "✓ active: v2 (previous: v1)",
		},
		{
			name:   "first switch",
			result: domain.SwitchResult{Active: "v1", Changed: true},
			want:   "✓ active: v1",
		},
		{
			name:   "no-op",
			result: domain.SwitchResult{Active: "v2", Previous: "v1", Changed: false},
			want:   "v2 already active",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderSwitchResult(tt.result))
		})
	}
}

func TestRenderVersionLine(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := domain.NewCatalog()
	c.Versions["v1"] = domain.Version{ID: "v1", CreatedAt: created}
	c.Versions["v2"] = domain.Version{ID: "v2", CreatedAt: created}
	c.Versions["v3"] = domain.Version{ID: "v3", CreatedAt: created}
	c.Active = "v3"
	c.Previous = "v2"

	assert.Contains(t, renderVersionLine(c, c.Versions["v3"]), "active")
	assert.Contains(t, renderVersionLine(c, c.Versions["v2"]), "previous")
	line := renderVersionLine(c, c.Versions["v1"])
	assert.NotContains(t, line, "active")
	assert.NotContains(t, line, "previous")
	assert.Contains(t, line, "-")
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
		{3 * 1024 * 1024 * 1024, "3.0 GiB"},
		{1 << 40, "1.0 TiB"},
		{5 << 50, "5.0 PiB"},
		{2 << 60, "2.0 EiB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatBytes(tt.in))
	}
}
