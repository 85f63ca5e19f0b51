package config

// Pinfile represents the structure of the pin.yaml manifest.
type Pinfile struct {
	Version      string          `yaml:"version"`
	Vendor       string          `yaml:"vendor"`
	Exclude      []string        `yaml:"exclude"`
	Dependencies []DependencyDTO `yaml:"dependencies"`
}

// DependencyDTO represents a dependency declaration in the manifest.
type DependencyDTO struct {
	Name       string   `yaml:"name"`
	Version    string   `yaml:"version"`
	URL        string   `yaml:"url"`
	Transitive *bool    `yaml:"transitive"`
	Exclude    []string `yaml:"exclude"`
}

// LockfileDTO represents the structure of the pin.lock file.
type LockfileDTO struct {
	Version      int                         `yaml:"version"`
	ManifestHash string                      `yaml:"manifest_hash"`
	Packages     map[string]LockedPackageDTO `yaml:"packages"`
}

// LockedPackageDTO represents one locked package.
type LockedPackageDTO struct {
	Version      string   `yaml:"version,omitempty"`
	Commit       string   `yaml:"commit"`
	URL          string   `yaml:"url,omitempty"`
	FirstLevel   bool     `yaml:"first_level,omitempty"`
	UpdateTime   int64    `yaml:"update_time,omitempty"`
	Dependencies []string `yaml:"dependencies,omitempty"`
}
