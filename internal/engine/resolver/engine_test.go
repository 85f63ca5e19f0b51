package resolver_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pin/internal/adapters/telemetry"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports/mocks"
	"go.trai.ch/pin/internal/engine/resolver"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const lockPath = "/work/pin.lock"

type harness struct {
	engine   *resolver.Engine
	versions *mocks.MockVersionResolver
	scanner  *mocks.MockTransitiveScanner
	locks    *mocks.MockLockStore
	cache    *mocks.MockPersistentCache
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	h := &harness{
		versions: mocks.NewMockVersionResolver(ctrl),
		scanner:  mocks.NewMockTransitiveScanner(ctrl),
		locks:    mocks.NewMockLockStore(ctrl),
		cache:    mocks.NewMockPersistentCache(ctrl),
	}
	h.engine = resolver.New(h.versions, h.scanner, h.locks, telemetry.Noop{}, log, h.cache).WithParallelism(4)
	return h
}

// expectSession expects one load/save cycle of the cache.
func (h *harness) expectSession() {
	gomock.InOrder(
		h.cache.EXPECT().Load(),
		h.cache.EXPECT().Save(),
	)
}

func record(commit, version string, at int64) domain.CommitRecord {
	return domain.CommitRecord{Commit: commit, Version: version, ResolvedAt: time.UnixMilli(at)}
}

func manifest(deps ...domain.DependencyRequest) *domain.Manifest {
	return &domain.Manifest{Vendor: "vendor", Dependencies: deps, Hash: "hash-1"}
}

func req(name, version string) domain.DependencyRequest {
	return domain.DependencyRequest{Name: domain.NewPackagePath(name), Version: version, Transitive: true}
}

func TestEngine_FirstLevelAndLockWrite(t *testing.T) {
	h := newHarness(t)
	h.expectSession()

	h.locks.EXPECT().Read(lockPath).Return(nil, nil)
	h.versions.EXPECT().Resolve(gomock.Any(), "https://github.com/a/b", "^1.0.0").Return(record("aaa", "v1.2.0", 10), nil)
	h.versions.EXPECT().Resolve(gomock.Any(), "https://github.com/c/d", "main").Return(record("ccc", "main", 20), nil)
	h.scanner.EXPECT().Scan(gomock.Any(), "vendor", gomock.Any()).Return(nil, nil).Times(2)

	var written *domain.Lockfile
	h.locks.EXPECT().Write(lockPath, gomock.Any()).DoAndReturn(func(_ string, lf *domain.Lockfile) error {
		written = lf
		return nil
	})

	reg, err := h.engine.Resolve(context.Background(),
		manifest(req("github.com/a/b", "^1.0.0"), req("github.com/c/d", "main")),
		resolver.Options{WriteLock: true, LockPath: lockPath},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())

	dep, ok := reg.Retrieve(domain.NewPackagePath("github.com/a/b/sub/pkg"))
	require.True(t, ok)
	assert.Equal(t, "aaa", dep.Commit)
	assert.Equal(t, "v1.2.0", dep.Version)
	assert.True(t, dep.FirstLevel)
	assert.Equal(t, int64(10), dep.UpdateTime)

	require.NotNil(t, written)
	assert.True(t, written.Matches("hash-1"))
	assert.Len(t, written.Packages, 2)
}

func TestEngine_MatchingLockShortCircuits(t *testing.T) {
	h := newHarness(t)
	h.expectSession()

	locked := domain.NewResolvedDependency("github.com/a/b", true, 10)
	locked.Commit = "aaa"
	h.locks.EXPECT().Read(lockPath).Return(domain.NewLockfile("hash-1", []*domain.ResolvedDependency{locked}), nil)

	reg, err := h.engine.Resolve(context.Background(),
		manifest(req("github.com/a/b", "^1.0.0")),
		resolver.Options{WriteLock: true, LockPath: lockPath},
	)
	require.NoError(t, err)

	dep, ok := reg.Retrieve(domain.NewPackagePath("github.com/a/b"))
	require.True(t, ok)
	assert.Equal(t, "aaa", dep.Commit)
}

func TestEngine_StaleLockIsIgnored(t *testing.T) {
	h := newHarness(t)
	h.expectSession()

	h.locks.EXPECT().Read(lockPath).Return(domain.NewLockfile("other-hash", nil), nil)
	h.versions.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(record("bbb", "v2", 1), nil)
	h.scanner.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	reg, err := h.engine.Resolve(context.Background(),
		manifest(req("github.com/a/b", "v2")),
		resolver.Options{LockPath: lockPath},
	)
	require.NoError(t, err)

	dep, _ := reg.Retrieve(domain.NewPackagePath("github.com/a/b"))
	assert.Equal(t, "bbb", dep.Commit)
}

func TestEngine_UnreadableLockIsIgnored(t *testing.T) {
	h := newHarness(t)
	h.expectSession()

	h.locks.EXPECT().Read(lockPath).Return(nil, domain.ErrLockParseFailed)
	h.versions.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(record("bbb", "v2", 1), nil)
	h.scanner.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := h.engine.Resolve(context.Background(),
		manifest(req("github.com/a/b", "v2")),
		resolver.Options{LockPath: lockPath},
	)
	require.NoError(t, err)
}

func TestEngine_UpdateClearsCachesAndSkipsLock(t *testing.T) {
	h := newHarness(t)
	gomock.InOrder(
		h.cache.EXPECT().Load(),
		h.cache.EXPECT().Clear(),
		h.cache.EXPECT().Save(),
	)

	h.versions.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(record("bbb", "v2", 1), nil)
	h.scanner.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	h.locks.EXPECT().Write(lockPath, gomock.Any()).Return(nil)

	_, err := h.engine.Resolve(context.Background(),
		manifest(req("github.com/a/b", "v2")),
		resolver.Options{Update: true, WriteLock: true, LockPath: lockPath},
	)
	require.NoError(t, err)
}

func TestEngine_TransitiveWalk(t *testing.T) {
	h := newHarness(t)
	h.expectSession()

	m := manifest(req("github.com/a/b", "v1"))
	m.Exclude = []string{"github.com/legacy/**"}

	h.versions.EXPECT().Resolve(gomock.Any(), "https://github.com/a/b", "v1").Return(record("aaa", "v1", 10), nil)

	// a/b requires c/d (unresolved) and an excluded legacy package.
	unresolved := domain.NewResolvedDependency("github.com/c/d", false, 0)
	unresolved.URL = "https://github.com/c/d"
	unresolved.Version = "^2.0.0"
	legacy := domain.NewResolvedDependency("github.com/legacy/old", false, 5)
	legacy.Commit = "lll"

	h.scanner.EXPECT().
		Scan(gomock.Any(), "vendor", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dep *domain.ResolvedDependency) ([]*domain.ResolvedDependency, error) {
			switch dep.Name() {
			case "github.com/a/b":
				return []*domain.ResolvedDependency{unresolved, legacy}, nil
			case "github.com/c/d":
				// Cycle back to the first-level package: rejected, walk stops.
				back := domain.NewResolvedDependency("github.com/a/b", false, 99)
				back.Commit = "zzz"
				return []*domain.ResolvedDependency{back}, nil
			}
			t.Errorf("unexpected scan of %s", dep.Name())
			return nil, nil
		}).
		Times(2)
	h.versions.EXPECT().Resolve(gomock.Any(), "https://github.com/c/d", "^2.0.0").Return(record("ddd", "v2.1.0", 30), nil)

	reg, err := h.engine.Resolve(context.Background(), m, resolver.Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())

	_, found := reg.Retrieve(domain.NewPackagePath("github.com/legacy/old"))
	assert.False(t, found, "excluded package must not be registered")

	cd, ok := reg.Retrieve(domain.NewPackagePath("github.com/c/d"))
	require.True(t, ok)
	assert.False(t, cd.FirstLevel)
	assert.Equal(t, "ddd", cd.Commit)
	assert.Equal(t, int64(30), cd.UpdateTime)

	ab, _ := reg.Retrieve(domain.NewPackagePath("github.com/a/b"))
	assert.Equal(t, "aaa", ab.Commit, "first-level entry must survive the cycle")
	assert.Equal(t, []domain.PackagePath{"github.com/c/d"}, ab.Dependencies)
}

func TestEngine_FresherTransitiveWins(t *testing.T) {
	h := newHarness(t)
	h.expectSession()

	h.versions.EXPECT().Resolve(gomock.Any(), "https://github.com/a/x", "").Return(record("x", "HEAD", 1), nil)
	h.versions.EXPECT().Resolve(gomock.Any(), "https://github.com/a/y", "").Return(record("y", "HEAD", 1), nil)

	older := domain.NewResolvedDependency("github.com/shared/lib", false, 100)
	older.Commit = "old"
	newer := domain.NewResolvedDependency("github.com/shared/lib", false, 200)
	newer.Commit = "new"

	h.scanner.EXPECT().
		Scan(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dep *domain.ResolvedDependency) ([]*domain.ResolvedDependency, error) {
			switch dep.Name() {
			case "github.com/a/x":
				return []*domain.ResolvedDependency{older.Clone()}, nil
			case "github.com/a/y":
				return []*domain.ResolvedDependency{newer.Clone()}, nil
			}
			return nil, nil
		}).
		AnyTimes()

	reg, err := h.engine.Resolve(context.Background(),
		manifest(req("github.com/a/x", ""), req("github.com/a/y", "")),
		resolver.Options{},
	)
	require.NoError(t, err)

	lib, ok := reg.Retrieve(domain.NewPackagePath("github.com/shared/lib"))
	require.True(t, ok)
	assert.Equal(t, "new", lib.Commit)
}

func TestEngine_NonTransitiveIsNotScanned(t *testing.T) {
	h := newHarness(t)
	h.expectSession()

	r := req("github.com/a/b", "v1")
	r.Transitive = false
	h.versions.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(record("aaa", "v1", 1), nil)
	h.scanner.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	reg, err := h.engine.Resolve(context.Background(), manifest(r), resolver.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())
}

func TestEngine_PerDependencyExclude(t *testing.T) {
	h := newHarness(t)
	h.expectSession()

	r := req("github.com/a/b", "v1")
	r.Exclude = []string{"github.com/c/*"}
	h.versions.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(record("aaa", "v1", 1), nil)

	dropped := domain.NewResolvedDependency("github.com/c/d", false, 1)
	dropped.Commit = "ddd"
	h.scanner.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*domain.ResolvedDependency{dropped}, nil)

	reg, err := h.engine.Resolve(context.Background(), manifest(r), resolver.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())
}

func TestEngine_FirstLevelNestedConflict(t *testing.T) {
	tests := []struct {
		name string
		deps []domain.DependencyRequest
	}{
		{
			name: "parent first",
			deps: []domain.DependencyRequest{req("github.com/a/b", "v1"), req("github.com/a/b/c", "v1")},
		},
		{
			name: "child first",
			deps: []domain.DependencyRequest{req("github.com/a/b/c", "v1"), req("github.com/a/b", "v1")},
		},
		{
			name: "separated by an unrelated declaration",
			deps: []domain.DependencyRequest{
				req("github.com/a/b/c/d", "v1"),
				req("github.com/x/y", "v1"),
				req("github.com/a/b", "v1"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.expectSession()
			h.locks.EXPECT().Write(gomock.Any(), gomock.Any()).Times(0)

			_, err := h.engine.Resolve(context.Background(),
				manifest(tt.deps...),
				resolver.Options{WriteLock: true},
			)
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrPackageConflict.Error())

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, "github.com/a/b", zErr.Metadata()["existing"])
		})
	}
}

func TestEngine_LockWithNestedEntriesIsReused(t *testing.T) {
	h := newHarness(t)
	h.expectSession()

	parent := domain.NewResolvedDependency("github.com/a/b", true, 10)
	parent.Commit = "aaa"
	child := domain.NewResolvedDependency("github.com/a/b/sub", false, 5)
	child.Commit = "sss"
	h.locks.EXPECT().Read(lockPath).Return(domain.NewLockfile("hash-1", []*domain.ResolvedDependency{parent, child}), nil)

	reg, err := h.engine.Resolve(context.Background(),
		manifest(req("github.com/a/b", "v1")),
		resolver.Options{WriteLock: true, LockPath: lockPath},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())

	dep, ok := reg.Retrieve(domain.NewPackagePath("github.com/a/b/sub/x"))
	require.True(t, ok)
	assert.Equal(t, "sss", dep.Commit)

	dep, ok = reg.Retrieve(domain.NewPackagePath("github.com/a/b/other"))
	require.True(t, ok)
	assert.Equal(t, "aaa", dep.Commit)
}

func TestEngine_TransitiveNestedConflict(t *testing.T) {
	h := newHarness(t)
	h.expectSession()

	h.versions.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(record("aaa", "v1", 1), nil)

	nested := domain.NewResolvedDependency("github.com/a/b/sub", false, 5)
	nested.Commit = "sss"
	h.scanner.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*domain.ResolvedDependency{nested}, nil)

	_, err := h.engine.Resolve(context.Background(), manifest(req("github.com/a/b", "v1")), resolver.Options{})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPackageConflict.Error())
}

func TestEngine_VersionFailureAbortsButSavesCaches(t *testing.T) {
	h := newHarness(t)
	h.expectSession()

	h.locks.EXPECT().Read(lockPath).Return(nil, nil)
	h.versions.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.CommitRecord{}, errors.New("ls-remote failed")).AnyTimes()

	_, err := h.engine.Resolve(context.Background(),
		manifest(req("github.com/a/b", "v1"), req("github.com/c/d", "v1")),
		resolver.Options{WriteLock: true, LockPath: lockPath},
	)
	require.Error(t, err)
	assert.ErrorContains(t, err, "ls-remote failed")
}

func TestEngine_InvalidExclude(t *testing.T) {
	h := newHarness(t)
	h.expectSession()

	m := manifest()
	m.Exclude = []string{"github.com/[oops"}

	_, err := h.engine.Resolve(context.Background(), m, resolver.Options{})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidExcludePattern.Error())
}

func TestVendorDirFor(t *testing.T) {
	m := &domain.Manifest{Vendor: "vendor"}
	assert.Equal(t, "/work/vendor", resolver.VendorDirFor("/work/pin.yaml", m))

	m.Vendor = "/abs/vendor"
	assert.Equal(t, "/abs/vendor", resolver.VendorDirFor("/work/pin.yaml", m))
}
