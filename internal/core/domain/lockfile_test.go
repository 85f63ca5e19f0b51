package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pin/internal/core/domain"
)

func TestLockfile_RoundTripsDependencies(t *testing.T) {
	first := domain.NewResolvedDependency("github.com/a/b", true, 10)
	first.Commit = "c1"
	first.Dependencies = []domain.PackagePath{"github.com/c/d"}
	second := domain.NewResolvedDependency("github.com/c/d", false, 20)
	second.Version = "v1.2.3"

	lf := domain.NewLockfile("hash", []*domain.ResolvedDependency{second, first})
	assert.Equal(t, domain.LockfileVersion, lf.Version)
	require.Len(t, lf.Packages, 2)

	deps := lf.Dependencies()
	require.Len(t, deps, 2)
	assert.Equal(t, domain.PackagePath("github.com/a/b"), deps[0].Name())
	assert.True(t, deps[0].FirstLevel)
	assert.Equal(t, "c1", deps[0].Commit)
	assert.Equal(t, []domain.PackagePath{"github.com/c/d"}, deps[0].Dependencies)
	assert.Equal(t, "v1.2.3", deps[1].Version)
	assert.Equal(t, int64(20), deps[1].UpdateTime)

	got, ok := lf.Dependency("github.com/c/d/")
	require.True(t, ok)
	assert.Equal(t, domain.PackagePath("github.com/c/d"), got.Name())

	_, ok = lf.Dependency("github.com/missing")
	assert.False(t, ok)
}

func TestLockfile_Matches(t *testing.T) {
	var nilLock *domain.Lockfile
	assert.False(t, nilLock.Matches("hash"))

	lf := domain.NewLockfile("hash", nil)
	assert.True(t, lf.Matches("hash"))
	assert.False(t, lf.Matches("other"))
	assert.False(t, lf.Matches(""))
}
