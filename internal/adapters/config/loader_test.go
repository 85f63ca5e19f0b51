package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pin/internal/adapters/config"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.ManifestFileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func TestLoad_Success(t *testing.T) {
	content := `
version: "1"
vendor: third_party
exclude: ["github.com/legacy/**"]
dependencies:
  - name: github.com/spf13/cobra
    version: ^1.10.0
  - name: gitlab.com/org/lib/
    version: main
    url: https://mirror.example.com/lib.git
    transitive: false
    exclude: ["gitlab.com/org/lib/internal/*"]
`
	path := writeManifest(t, content)

	m, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "1", m.Version)
	assert.Equal(t, "third_party", m.Vendor)
	assert.Equal(t, []string{"github.com/legacy/**"}, m.Exclude)
	assert.NotEmpty(t, m.Hash)
	require.Len(t, m.Dependencies, 2)

	cobra := m.Dependencies[0]
	assert.Equal(t, "github.com/spf13/cobra", cobra.Name.String())
	assert.Equal(t, "^1.10.0", cobra.Version)
	assert.True(t, cobra.Transitive, "transitive defaults to true")
	assert.Equal(t, "https://github.com/spf13/cobra", cobra.Source())

	lib := m.Dependencies[1]
	assert.Equal(t, "gitlab.com/org/lib", lib.Name.String())
	assert.False(t, lib.Transitive)
	assert.Equal(t, "https://mirror.example.com/lib.git", lib.Source())
	assert.Equal(t, []string{"gitlab.com/org/lib/internal/*"}, lib.Exclude)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeManifest(t, "dependencies:\n  - name: github.com/a/b\n")

	m, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultVendorDir, m.Vendor)
	require.Len(t, m.Dependencies, 1)
	assert.Empty(t, m.Dependencies[0].Version)
}

func TestLoad_HashTracksContent(t *testing.T) {
	loader := newLoader(t)

	first, err := loader.Load(writeManifest(t, "dependencies:\n  - name: github.com/a/b\n"))
	require.NoError(t, err)
	same, err := loader.Load(writeManifest(t, "dependencies:\n  - name: github.com/a/b\n"))
	require.NoError(t, err)
	changed, err := loader.Load(writeManifest(t, "dependencies:\n  - name: github.com/a/c\n"))
	require.NoError(t, err)

	assert.Equal(t, first.Hash, same.Hash)
	assert.NotEqual(t, first.Hash, changed.Hash)
}

func TestLoad_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := newLoader(t).Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigNotFound.Error())

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, path, zErr.Metadata()["path"])
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeManifest(t, "dependencies: [unclosed")

	_, err := newLoader(t).Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

func TestLoad_MissingName(t *testing.T) {
	path := writeManifest(t, "dependencies:\n  - version: v1.0.0\n")

	_, err := newLoader(t).Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidDependency.Error())
}

func TestLoad_InvalidExcludePattern(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "top level",
			content: "exclude: [\"github.com/[a\"]\n",
		},
		{
			name:    "per dependency",
			content: "dependencies:\n  - name: github.com/a/b\n    exclude: [\"github.com/{x\"]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newLoader(t).Load(writeManifest(t, tt.content))
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrInvalidExcludePattern.Error())
		})
	}
}
