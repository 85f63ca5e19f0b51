package ports

import "go.trai.ch/pin/internal/core/domain"

// ManifestLoader defines the interface for loading the project manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads and validates the manifest at path.
	Load(path string) (*domain.Manifest, error)
}

// LockStore reads and writes lock files.
type LockStore interface {
	// Read returns the lock file at path, or nil, nil if there is none.
	Read(path string) (*domain.Lockfile, error)

	// Write replaces the lock file at path.
	Write(path string, lf *domain.Lockfile) error
}
