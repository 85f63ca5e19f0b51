package config

import (
	"errors"
	iofs "io/fs"
	"os"
	"slices"

	"go.trai.ch/pin/internal/adapters/fs"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// LockStore implements ports.LockStore with YAML lock files.
type LockStore struct{}

var _ ports.LockStore = (*LockStore)(nil)

// NewLockStore creates a new LockStore.
func NewLockStore() *LockStore {
	return &LockStore{}
}

// Read returns the lock file at path. A missing file yields nil, nil.
func (s *LockStore) Read(path string) (*domain.Lockfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the manifest path
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockReadFailed.Error()), "path", path)
	}

	var dto LockfileDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockParseFailed.Error()), "path", path)
	}

	lf := &domain.Lockfile{
		Version:      dto.Version,
		ManifestHash: dto.ManifestHash,
		Packages:     make(map[string]domain.LockedPackage, len(dto.Packages)),
	}
	for name, pkg := range dto.Packages {
		lf.Packages[domain.NewPackagePath(name).String()] = domain.LockedPackage{
			Version:      pkg.Version,
			Commit:       pkg.Commit,
			URL:          pkg.URL,
			FirstLevel:   pkg.FirstLevel,
			UpdateTime:   pkg.UpdateTime,
			Dependencies: pkg.Dependencies,
		}
	}
	return lf, nil
}

// Write replaces the lock file at path atomically.
func (s *LockStore) Write(path string, lf *domain.Lockfile) error {
	dto := LockfileDTO{
		Version:      lf.Version,
		ManifestHash: lf.ManifestHash,
		Packages:     make(map[string]LockedPackageDTO, len(lf.Packages)),
	}
	for name, pkg := range lf.Packages {
		deps := slices.Clone(pkg.Dependencies)
		slices.Sort(deps)
		dto.Packages[name] = LockedPackageDTO{
			Version:      pkg.Version,
			Commit:       pkg.Commit,
			URL:          pkg.URL,
			FirstLevel:   pkg.FirstLevel,
			UpdateTime:   pkg.UpdateTime,
			Dependencies: deps,
		}
	}

	data, err := yaml.Marshal(&dto)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLockWriteFailed.Error()), "path", path)
	}

	if err := fs.WriteFileAtomic(path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLockWriteFailed.Error()), "path", path)
	}
	return nil
}
