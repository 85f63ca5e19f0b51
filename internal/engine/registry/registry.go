// Package registry holds the authoritative resolved dependency per package path.
package registry

import (
	"slices"
	"strings"
	"sync"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry maps package paths to their authoritative resolved dependency.
// An entry also governs every sub-path below it.
//
// All access goes through mu: Register holds the write lock for the whole
// lookup, decision and store sequence, Retrieve holds the read lock.
type Registry struct {
	mu      sync.RWMutex
	entries map[domain.PackagePath]*domain.ResolvedDependency
}

var _ ports.DependencyRegistry = (*Registry)(nil)

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		entries: make(map[domain.PackagePath]*domain.ResolvedDependency),
	}
}

// Register offers candidate to the registry and reports whether it became
// the authoritative entry for its path.
//
// A candidate nested below an already registered package, and two first-level
// declarations of the same package, are fatal conflicts. Otherwise first-level
// entries beat transitive ones and transitive entries are ordered by
// UpdateTime. On equal UpdateTime the existing entry is kept.
func (r *Registry) Register(candidate *domain.ResolvedDependency) (bool, error) {
	if candidate == nil || candidate.Name() == "" {
		return false, zerr.With(domain.ErrInvalidDependency, "reason", "empty package path")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.lookup(candidate.Name())
	switch {
	case !ok:
		r.entries[candidate.Name()] = candidate
		return true, nil
	case existing.Name().IsStrictPrefixOf(candidate.Name()):
		return false, conflict(domain.ErrPackageConflict, existing, candidate)
	case existing.FirstLevel && candidate.FirstLevel:
		return false, conflict(domain.ErrFirstLevelConflict, existing, candidate)
	case existing.FirstLevel:
		return false, nil
	case candidate.FirstLevel, existing.UpdateTime < candidate.UpdateTime:
		r.entries[candidate.Name()] = candidate
		return true, nil
	default:
		return false, nil
	}
}

// Retrieve returns the entry governing name: the entry registered under name
// itself or, failing that, under its nearest registered ancestor.
func (r *Registry) Retrieve(name domain.PackagePath) (*domain.ResolvedDependency, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lookup(name)
}

// All returns every registered entry ordered by package path.
func (r *Registry) All() []*domain.ResolvedDependency {
	r.mu.RLock()
	deps := make([]*domain.ResolvedDependency, 0, len(r.entries))
	for _, dep := range r.entries {
		deps = append(deps, dep)
	}
	r.mu.RUnlock()

	slices.SortFunc(deps, func(a, b *domain.ResolvedDependency) int {
		return strings.Compare(a.Name().String(), b.Name().String())
	})
	return deps
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// lookup must be called with mu held.
func (r *Registry) lookup(name domain.PackagePath) (*domain.ResolvedDependency, bool) {
	for prefix := range name.Ancestors() {
		if dep, ok := r.entries[prefix]; ok {
			return dep, true
		}
	}
	return nil, false
}

func conflict(sentinel error, existing, candidate *domain.ResolvedDependency) error {
	err := zerr.With(sentinel, "existing", existing.Name().String())
	return zerr.With(err, "candidate", candidate.Name().String())
}
