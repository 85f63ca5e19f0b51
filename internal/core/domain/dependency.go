package domain

import (
	"encoding/json"
	"slices"

	"gopkg.in/yaml.v3"
)

// DependencyRequest represents a dependency declared by the project in its manifest.
// This is the input representation before resolution (e.g., from pin.yaml).
type DependencyRequest struct {
	// Name is the package path of the dependency (e.g., "github.com/spf13/cobra").
	Name PackagePath

	// Version is a tag, branch, commit or semver constraint (e.g., "v1.10.2", "^1.2.0").
	// An empty version means the default branch head.
	Version string

	// URL overrides the repository location. When empty it is derived from Name.
	URL string

	// Transitive controls whether dependencies of this dependency are scanned.
	Transitive bool

	// Exclude holds glob patterns for transitive packages to ignore below this dependency.
	Exclude []string
}

// Source returns the repository URL for the request.
func (r DependencyRequest) Source() string {
	if r.URL != "" {
		return r.URL
	}
	return "https://" + r.Name.String()
}

// ResolvedDependency is a dependency whose version and source have already been determined
// and which is ready to be registered.
type ResolvedDependency struct {
	name PackagePath

	// FirstLevel is true when the dependency was declared by the project itself.
	FirstLevel bool

	// UpdateTime orders transitive resolutions of the same package by freshness.
	// It is a Unix timestamp in milliseconds in practice; only its ordering matters.
	UpdateTime int64

	Version string
	Commit  string
	URL     string

	// Dependencies lists the packages this dependency requires.
	Dependencies []PackagePath
}

// NewResolvedDependency creates a ResolvedDependency for the given package path.
func NewResolvedDependency(name string, firstLevel bool, updateTime int64) *ResolvedDependency {
	return &ResolvedDependency{
		name:       NewPackagePath(name),
		FirstLevel: firstLevel,
		UpdateTime: updateTime,
	}
}

// Name returns the package path. It cannot change after construction.
func (d *ResolvedDependency) Name() PackagePath {
	return d.name
}

// Clone returns an independent deep copy of d.
func (d *ResolvedDependency) Clone() *ResolvedDependency {
	if d == nil {
		return nil
	}
	cloned := *d
	cloned.Dependencies = slices.Clone(d.Dependencies)
	return &cloned
}

// resolvedDependencyDTO is the serialized form shared by the JSON and YAML codecs.
type resolvedDependencyDTO struct {
	Name         PackagePath   `json:"name"                   yaml:"name"`
	FirstLevel   bool          `json:"first_level,omitzero"   yaml:"first_level,omitempty"`
	UpdateTime   int64         `json:"update_time,omitzero"   yaml:"update_time,omitempty"`
	Version      string        `json:"version,omitzero"       yaml:"version,omitempty"`
	Commit       string        `json:"commit,omitzero"        yaml:"commit,omitempty"`
	URL          string        `json:"url,omitzero"           yaml:"url,omitempty"`
	Dependencies []PackagePath `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

func (d *ResolvedDependency) toDTO() resolvedDependencyDTO {
	return resolvedDependencyDTO{
		Name:         d.name,
		FirstLevel:   d.FirstLevel,
		UpdateTime:   d.UpdateTime,
		Version:      d.Version,
		Commit:       d.Commit,
		URL:          d.URL,
		Dependencies: d.Dependencies,
	}
}

func (raw resolvedDependencyDTO) toDependency() ResolvedDependency {
	return ResolvedDependency{
		name:         NewPackagePath(raw.Name.String()),
		FirstLevel:   raw.FirstLevel,
		UpdateTime:   raw.UpdateTime,
		Version:      raw.Version,
		Commit:       raw.Commit,
		URL:          raw.URL,
		Dependencies: raw.Dependencies,
	}
}

// MarshalJSON implements json.Marshaler.
func (d *ResolvedDependency) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.toDTO())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *ResolvedDependency) UnmarshalJSON(data []byte) error {
	var raw resolvedDependencyDTO
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = raw.toDependency()
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d *ResolvedDependency) MarshalYAML() (any, error) {
	return d.toDTO(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *ResolvedDependency) UnmarshalYAML(value *yaml.Node) error {
	var raw resolvedDependencyDTO
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*d = raw.toDependency()
	return nil
}
