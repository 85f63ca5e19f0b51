package ports

import "go.trai.ch/pin/internal/core/domain"

// DependencyRegistry is the single arbiter of which resolved dependency owns a package path.
//
//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type DependencyRegistry interface {
	// Register tries to install dep as the authoritative entry for its path.
	// It reports whether the registry changed, and fails on unresolvable conflicts.
	Register(dep *domain.ResolvedDependency) (bool, error)

	// Retrieve returns the entry owning name: name itself or its nearest registered ancestor.
	Retrieve(name domain.PackagePath) (*domain.ResolvedDependency, bool)
}
