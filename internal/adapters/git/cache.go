package git

import (
	"go.trai.ch/pin/internal/adapters/cache"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
)

// VersionCache persists version-to-commit lookups keyed by repository and requested version.
type VersionCache = cache.PersistentCache[domain.VersionKey, domain.CommitRecord]

// NewVersionCache creates a VersionCache backed by the file at path.
func NewVersionCache(path string, logger ports.Logger) *VersionCache {
	return cache.New[domain.VersionKey, domain.CommitRecord](path, logger, cache.WithName("versions"))
}
