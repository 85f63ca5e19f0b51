package domain

import "time"

// VersionKey identifies a version-to-commit lookup by repository URL and requested version.
type VersionKey string

// NewVersionKey builds the key for a lookup of version in the repository at url.
func NewVersionKey(url, version string) VersionKey {
	return VersionKey(url + "@" + version)
}

// Clone returns k.
func (k VersionKey) Clone() VersionKey {
	return k
}

// CommitRecord is the result of resolving a version to a commit.
type CommitRecord struct {
	// Commit is the full commit hash.
	Commit string `json:"commit" yaml:"commit"`

	// Version is the concrete ref the request resolved to (e.g. "v1.2.3" for "^1.2.0").
	Version string `json:"version,omitzero" yaml:"version,omitempty"`

	// ResolvedAt is when the lookup was made.
	ResolvedAt time.Time `json:"resolved_at,omitzero" yaml:"resolved_at,omitempty"`
}

// Clone returns a copy of r. CommitRecord holds no references.
func (r CommitRecord) Clone() CommitRecord {
	return r
}
