package ports

import (
	"context"

	"go.trai.ch/pin/internal/core/domain"
)

// VersionResolver resolves a requested version of a repository to a commit.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type VersionResolver interface {
	// Resolve resolves version (tag, branch, commit or semver constraint) in the repository at url.
	// It should check the cache first and only then query the repository.
	Resolve(ctx context.Context, url, version string) (domain.CommitRecord, error)
}

// TransitiveScanner discovers the dependencies of an already resolved dependency.
type TransitiveScanner interface {
	// Scan returns the transitive candidates required by dep, whose sources live below vendorDir.
	// A dependency without metadata yields no candidates and no error.
	Scan(ctx context.Context, vendorDir string, dep *domain.ResolvedDependency) ([]*domain.ResolvedDependency, error)
}
