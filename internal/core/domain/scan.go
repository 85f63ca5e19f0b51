package domain

// ScanKey identifies the transitive scan of one vendored package at one content fingerprint.
type ScanKey string

// NewScanKey builds the key for pkg whose metadata hashes to fingerprint.
func NewScanKey(pkg PackagePath, fingerprint string) ScanKey {
	return ScanKey(pkg.String() + "#" + fingerprint)
}

// Clone returns k.
func (k ScanKey) Clone() ScanKey {
	return k
}

// ScanRecord holds the transitive candidates discovered in a vendored package.
type ScanRecord struct {
	Dependencies []*ResolvedDependency `json:"dependencies" yaml:"dependencies"`
}

// Clone returns a deep copy of r.
func (r ScanRecord) Clone() ScanRecord {
	deps := make([]*ResolvedDependency, len(r.Dependencies))
	for i, dep := range r.Dependencies {
		deps[i] = dep.Clone()
	}
	return ScanRecord{Dependencies: deps}
}
