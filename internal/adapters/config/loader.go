// Package config provides the configuration loader for vessel.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"go.scitex.ch/vessel/internal/core/domain"
	"go.scitex.ch/vessel/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader by discovering a vessel.yaml upward
// from the working directory. A missing file yields the default
// configuration rooted at the working directory.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a config loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads the configuration for the given working directory.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, found := l.findConfiguration(cwd)
	if !found {
		cfg := domain.DefaultConfig()
		cfg.ContainersDir = filepath.Join(cwd, cfg.ContainersDir)
		return cfg, nil
	}
	return l.loadVesselfile(configPath)
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}
	return "", false
}

func (l *Loader) loadVesselfile(configPath string) (*domain.Config, error) {
	data, err := os.ReadFile(configPath) //nolint:gosec // path is discovered from the working directory
	if err != nil {
		return nil, errors.Join(domain.ErrConfigReadFailed, err)
	}

	var vesselfile Vesselfile
	if err := yaml.Unmarshal(data, &vesselfile); err != nil {
		return nil, errors.Join(domain.ErrConfigParseFailed, err)
	}

	cfg := domain.DefaultConfig()
	configDir := filepath.Dir(configPath)

	if vesselfile.ContainersDir != "" {
		cfg.ContainersDir = vesselfile.ContainersDir
	}
	// Relative paths are anchored at the config file, not the invocation
	// directory, so commands behave the same from any subdirectory.
	if !filepath.IsAbs(cfg.ContainersDir) {
		cfg.ContainersDir = filepath.Join(configDir, cfg.ContainersDir)
	}

	if vesselfile.SlotPath != "" {
		cfg.SlotPath = vesselfile.SlotPath
		if !filepath.IsAbs(cfg.SlotPath) {
			cfg.SlotPath = filepath.Join(configDir, cfg.SlotPath)
		}
	}

	if vesselfile.RetainCount != nil {
		if *vesselfile.RetainCount < 0 {
			return nil, zerr.With(zerr.New("retain_count must not be negative"), "retain_count", *vesselfile.RetainCount)
		}
		cfg.RetainCount = *vesselfile.RetainCount
	}

	if vesselfile.LockWait != "" {
		d, err := time.ParseDuration(vesselfile.LockWait)
		if err != nil {
			return nil, errors.Join(domain.ErrConfigParseFailed, zerr.Wrap(err, "invalid lock_wait"))
		}
		cfg.LockWait = d
	}

	if len(vesselfile.Probe.Command) > 0 {
		cfg.Probe.Command = vesselfile.Probe.Command
	}
	if vesselfile.Probe.Timeout != "" {
		d, err := time.ParseDuration(vesselfile.Probe.Timeout)
		if err != nil {
			return nil, errors.Join(domain.ErrConfigParseFailed, zerr.Wrap(err, "invalid probe timeout"))
		}
		cfg.Probe.Timeout = d
	}

	cfg.DockerServices = vesselfile.Docker.Services
	cfg.HostTools = vesselfile.Host.Tools

	return cfg, nil
}
