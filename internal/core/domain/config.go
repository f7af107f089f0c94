package domain

import "time"

const (
	// DefaultRetainCount is the number of most-recent versions cleanup keeps
	// when the config does not say otherwise.
	DefaultRetainCount = 3

	// DefaultProbeTimeout bounds the smoke probe; a timed-out probe counts
	// as a failed probe.
	DefaultProbeTimeout = 60 * time.Second

	// DefaultLockWait bounds the wait for the catalog lock before the
	// operation fails with ErrConcurrentOperation.
	DefaultLockWait = 5 * time.Second
)

// ProbeConfig configures the smoke-execution probe run before a switch
// commits.
type ProbeConfig struct {
	// Command is the probe command run inside the artifact. Empty means
	// the runtime's default minimal command.
	Command []string
	// Timeout bounds the probe run.
	Timeout time.Duration
}

// Config is the resolved vessel configuration.
type Config struct {
	// ContainersDir holds the artifacts, the catalog file, and the lock
	// file.
	ContainersDir string
	// SlotPath is the active-slot symlink updated by deploy.
	SlotPath string
	// RetainCount is the default retention for cleanup.
	RetainCount int
	// LockWait bounds catalog lock acquisition.
	LockWait time.Duration
	// Probe configures the pre-commit smoke probe.
	Probe ProbeConfig
	// DockerServices are compose service container names whose health the
	// status dashboard reports.
	DockerServices []string
	// HostTools are executables whose presence on the host the status
	// dashboard reports.
	HostTools []string
}

// DefaultConfig returns the configuration used when no vessel.yaml is found.
func DefaultConfig() *Config {
	return &Config{
		ContainersDir: "containers",
		RetainCount:   DefaultRetainCount,
		LockWait:      DefaultLockWait,
		Probe: ProbeConfig{
			Timeout: DefaultProbeTimeout,
		},
	}
}
