// Package config loads the pin.yaml manifest and reads and writes pin.lock.
package config

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"

	"github.com/gobwas/glob"
	"go.trai.ch/pin/internal/adapters/fs"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ManifestLoader for YAML manifests.
type Loader struct {
	Logger ports.Logger
}

var _ ports.ManifestLoader = (*Loader)(nil)

// NewLoader creates a new configuration loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads the manifest at path, applies defaults and validates every declaration.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(domain.ErrConfigNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var pinfile Pinfile
	if err := yaml.Unmarshal(data, &pinfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	manifest, err := buildManifest(&pinfile)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	manifest.Hash = fs.Fingerprint(data)

	l.Logger.Debug(fmt.Sprintf("loaded %s with %d dependencies", path, len(manifest.Dependencies)))
	return manifest, nil
}

func buildManifest(pinfile *Pinfile) (*domain.Manifest, error) {
	if err := validatePatterns(pinfile.Exclude); err != nil {
		return nil, err
	}

	vendor := pinfile.Vendor
	if vendor == "" {
		vendor = domain.DefaultVendorDir
	}

	m := &domain.Manifest{
		Version:      pinfile.Version,
		Vendor:       vendor,
		Exclude:      pinfile.Exclude,
		Dependencies: make([]domain.DependencyRequest, 0, len(pinfile.Dependencies)),
	}

	for i, dto := range pinfile.Dependencies {
		name := domain.NewPackagePath(dto.Name)
		if name == "" {
			return nil, zerr.With(zerr.With(domain.ErrInvalidDependency, "index", i), "reason", "missing name")
		}

		if err := validatePatterns(dto.Exclude); err != nil {
			return nil, zerr.With(err, "dependency", name.String())
		}

		transitive := true
		if dto.Transitive != nil {
			transitive = *dto.Transitive
		}

		m.Dependencies = append(m.Dependencies, domain.DependencyRequest{
			Name:       name,
			Version:    dto.Version,
			URL:        dto.URL,
			Transitive: transitive,
			Exclude:    dto.Exclude,
		})
	}

	return m, nil
}

func validatePatterns(patterns []string) error {
	for _, p := range patterns {
		if _, err := glob.Compile(p, '/'); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidExcludePattern.Error()), "pattern", p)
		}
	}
	return nil
}
