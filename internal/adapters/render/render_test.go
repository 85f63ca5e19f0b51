package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pin/internal/adapters/render"
	"go.trai.ch/pin/internal/core/domain"
)

func sampleDeps() []*domain.ResolvedDependency {
	direct := domain.NewResolvedDependency("github.com/a/b", true, 1)
	direct.Version = "v1.2.0"
	direct.Commit = "0123456789abcdef0123456789abcdef01234567"
	direct.URL = "https://github.com/a/b"
	direct.Dependencies = []domain.PackagePath{"github.com/c/d"}

	transitive := domain.NewResolvedDependency("github.com/c/d", false, 2)
	transitive.Commit = "fedcba9876543210fedcba9876543210fedcba98"

	return []*domain.ResolvedDependency{direct, transitive}
}

func TestTable(t *testing.T) {
	out := render.Table(sampleDeps())

	assert.Contains(t, out, "PACKAGE")
	assert.Contains(t, out, "github.com/a/b")
	assert.Contains(t, out, "v1.2.0")
	assert.Contains(t, out, "0123456789ab")
	assert.NotContains(t, out, "0123456789abcdef0123")
	assert.Contains(t, out, "direct")
	assert.Contains(t, out, "transitive")
}

func TestTable_Empty(t *testing.T) {
	out := render.Table(nil)
	assert.Contains(t, out, "PACKAGE")
}

func TestEntry(t *testing.T) {
	deps := sampleDeps()
	out := render.Entry(domain.NewPackagePath("github.com/a/b/sub"), deps[0])

	assert.Contains(t, out, "github.com/a/b/sub")
	assert.Contains(t, out, deps[0].Commit)
	assert.Contains(t, out, "https://github.com/a/b")
	assert.Contains(t, out, "github.com/c/d")
	assert.Equal(t, 7, strings.Count(out, "\n"))
}

func TestShortCommit(t *testing.T) {
	assert.Equal(t, "abc", render.ShortCommit("abc"))
	assert.Equal(t, "0123456789ab", render.ShortCommit("0123456789abcdef"))
}
