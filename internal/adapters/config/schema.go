package config

// Vesselfile represents the structure of the vessel.yaml configuration file.
type Vesselfile struct {
	ContainersDir string    `yaml:"containers_dir"`
	SlotPath      string    `yaml:"slot_path"`
	RetainCount   *int      `yaml:"retain_count"`
	LockWait      string    `yaml:"lock_wait"`
	Probe         ProbeDTO  `yaml:"probe"`
	Docker        DockerDTO `yaml:"docker"`
	Host          HostDTO   `yaml:"host"`
}

// ProbeDTO configures the smoke check run before a switch commits.
type ProbeDTO struct {
	Command []string `yaml:"command"`
	Timeout string   `yaml:"timeout"`
}

// DockerDTO names the compose services whose health feeds status reports.
type DockerDTO struct {
	Services []string `yaml:"services"`
}

// HostDTO names the host tools whose presence feeds status reports.
type HostDTO struct {
	Tools []string `yaml:"tools"`
}
