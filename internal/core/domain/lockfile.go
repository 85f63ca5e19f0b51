package domain

import "slices"

// LockfileVersion is the current lock file format version.
const LockfileVersion = 1

// Lockfile represents the complete state of resolved package dependencies.
// It provides a reproducible snapshot of the registry at the end of a resolution.
type Lockfile struct {
	// Version is the lockfile format version.
	Version int

	// ManifestHash is the hash of the manifest the lock file was produced from.
	ManifestHash string

	// Packages maps package paths to their locked resolution.
	// The key is the package path as a string for serialization compatibility.
	Packages map[string]LockedPackage
}

// LockedPackage is the persisted form of a ResolvedDependency.
type LockedPackage struct {
	Version      string
	Commit       string
	URL          string
	FirstLevel   bool
	UpdateTime   int64
	Dependencies []string
}

// NewLockfile snapshots the given dependencies into a Lockfile.
func NewLockfile(manifestHash string, deps []*ResolvedDependency) *Lockfile {
	lf := &Lockfile{
		Version:      LockfileVersion,
		ManifestHash: manifestHash,
		Packages:     make(map[string]LockedPackage, len(deps)),
	}
	for _, dep := range deps {
		requires := make([]string, len(dep.Dependencies))
		for i, p := range dep.Dependencies {
			requires[i] = p.String()
		}
		lf.Packages[dep.Name().String()] = LockedPackage{
			Version:      dep.Version,
			Commit:       dep.Commit,
			URL:          dep.URL,
			FirstLevel:   dep.FirstLevel,
			UpdateTime:   dep.UpdateTime,
			Dependencies: requires,
		}
	}
	return lf
}

// Matches reports whether the lock file was produced from a manifest with the given hash.
func (l *Lockfile) Matches(manifestHash string) bool {
	return l != nil && manifestHash != "" && l.ManifestHash == manifestHash
}

// Dependency returns the locked package for name as a ResolvedDependency.
func (l *Lockfile) Dependency(name string) (*ResolvedDependency, bool) {
	if l == nil {
		return nil, false
	}
	pkg, ok := l.Packages[NewPackagePath(name).String()]
	if !ok {
		return nil, false
	}
	return pkg.toDependency(name), true
}

// Dependencies returns all locked packages, sorted by name.
func (l *Lockfile) Dependencies() []*ResolvedDependency {
	if l == nil {
		return nil
	}
	names := make([]string, 0, len(l.Packages))
	for name := range l.Packages {
		names = append(names, name)
	}
	slices.Sort(names)

	deps := make([]*ResolvedDependency, 0, len(names))
	for _, name := range names {
		deps = append(deps, l.Packages[name].toDependency(name))
	}
	return deps
}

func (p LockedPackage) toDependency(name string) *ResolvedDependency {
	dep := NewResolvedDependency(name, p.FirstLevel, p.UpdateTime)
	dep.Version = p.Version
	dep.Commit = p.Commit
	dep.URL = p.URL
	for _, req := range p.Dependencies {
		dep.Dependencies = append(dep.Dependencies, NewPackagePath(req))
	}
	return dep
}
