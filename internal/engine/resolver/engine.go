// Package resolver orchestrates a dependency resolution session.
package resolver

import (
	"cmp"
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/gobwas/glob"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/pin/internal/engine/registry"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options configures a resolution session.
type Options struct {
	// Update ignores a matching lock file and every cached lookup.
	Update bool

	// WriteLock writes the registry to LockPath when the session succeeds.
	WriteLock bool

	// LockPath is the lock file of the manifest. An empty path disables the lock file.
	LockPath string

	// VendorDir overrides the manifest's vendor directory.
	VendorDir string
}

// Engine resolves a manifest into a populated registry.
type Engine struct {
	versions  ports.VersionResolver
	scanner   ports.TransitiveScanner
	locks     ports.LockStore
	telemetry ports.Telemetry
	logger    ports.Logger
	caches    []ports.PersistentCache

	parallelism int
	now         func() time.Time
}

// New creates a new Engine. The caches are loaded at the start and saved at the end of every session.
func New(
	versions ports.VersionResolver,
	scanner ports.TransitiveScanner,
	locks ports.LockStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
	caches ...ports.PersistentCache,
) *Engine {
	return &Engine{
		versions:    versions,
		scanner:     scanner,
		locks:       locks,
		telemetry:   telemetry,
		logger:      logger,
		caches:      caches,
		parallelism: runtime.NumCPU(),
		now:         time.Now,
	}
}

// WithParallelism limits the number of concurrent lookups.
func (e *Engine) WithParallelism(n int) *Engine {
	if n > 0 {
		e.parallelism = n
	}
	return e
}

// node is a registered dependency waiting to be scanned, together with the
// exclude patterns inherited from the declaration it was reached from.
type node struct {
	dep      *domain.ResolvedDependency
	excludes []glob.Glob
}

// Resolve runs one session: it resolves every first-level declaration, walks
// the vendored sources for transitive candidates and registers all of them.
//
//nolint:cyclop // orchestration function
func (e *Engine) Resolve(ctx context.Context, m *domain.Manifest, opts Options) (*registry.Registry, error) {
	for _, c := range e.caches {
		c.Load()
		if opts.Update {
			c.Clear()
		}
	}
	defer func() {
		for _, c := range e.caches {
			c.Save()
		}
	}()

	global, err := compileGlobs(m.Exclude)
	if err != nil {
		return nil, err
	}

	if !opts.Update {
		if reg, ok := e.fromLock(ctx, m, opts.LockPath); ok {
			return reg, nil
		}
	}

	reg := registry.New()

	roots, err := e.resolveFirstLevel(ctx, m, reg, global)
	if err != nil {
		return nil, err
	}

	vendorDir := opts.VendorDir
	if vendorDir == "" {
		vendorDir = m.Vendor
	}
	if err := e.walk(ctx, reg, vendorDir, roots); err != nil {
		return nil, err
	}

	if opts.WriteLock && opts.LockPath != "" {
		if err := e.locks.Write(opts.LockPath, domain.NewLockfile(m.Hash, reg.All())); err != nil {
			return nil, err
		}
		e.logger.Info(fmt.Sprintf("wrote %s with %d packages", opts.LockPath, reg.Len()))
	}

	return reg, nil
}

// fromLock rebuilds the registry from the lock file when it was written for this manifest.
// An unreadable lock file is reported and ignored.
func (e *Engine) fromLock(ctx context.Context, m *domain.Manifest, path string) (*registry.Registry, bool) {
	if path == "" {
		return nil, false
	}

	lf, err := e.locks.Read(path)
	if err != nil {
		e.logger.Warn(fmt.Sprintf("ignoring unreadable lock file %s", path))
		e.logger.Debug(err.Error())
		return nil, false
	}
	if !lf.Matches(m.Hash) {
		return nil, false
	}

	// Deepest paths first: a parent may join a registered child but not the
	// reverse, so this order rebuilds every state the registry accepted.
	deps := lf.Dependencies()
	slices.SortStableFunc(deps, func(a, b *domain.ResolvedDependency) int {
		return cmp.Compare(b.Name().Depth(), a.Name().Depth())
	})

	reg := registry.New()
	for _, dep := range deps {
		_, vertex := e.telemetry.Record(ctx, dep.Name().String())
		vertex.Cached()
		if _, err := reg.Register(dep); err != nil {
			vertex.Complete(err)
			e.logger.Warn(fmt.Sprintf("lock file %s is inconsistent, resolving again", path))
			e.logger.Debug(err.Error())
			return nil, false
		}
		vertex.Complete(nil)
	}

	e.logger.Info(fmt.Sprintf("using %s, manifest unchanged", path))
	return reg, true
}

// resolveFirstLevel looks up every declaration concurrently, then registers
// them in manifest order so conflicts are reported deterministically.
func (e *Engine) resolveFirstLevel(
	ctx context.Context,
	m *domain.Manifest,
	reg *registry.Registry,
	global []glob.Glob,
) ([]node, error) {
	if err := checkNestedDeclarations(m.Dependencies); err != nil {
		return nil, err
	}

	deps := make([]*domain.ResolvedDependency, len(m.Dependencies))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.parallelism)
	for i, req := range m.Dependencies {
		g.Go(func() error {
			dep, err := e.lookup(gctx, req.Name.String(), req.Source(), req.Version, true, 0)
			if err != nil {
				return err
			}
			deps[i] = dep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	roots := make([]node, 0, len(deps))
	for i, dep := range deps {
		if _, err := reg.Register(dep); err != nil {
			return nil, err
		}

		req := m.Dependencies[i]
		if !req.Transitive {
			continue
		}
		local, err := compileGlobs(req.Exclude)
		if err != nil {
			return nil, err
		}
		roots = append(roots, node{dep: dep, excludes: append(local, global...)})
	}
	return roots, nil
}

// checkNestedDeclarations rejects two declarations where one package lies
// below the other, whichever comes first in the manifest.
func checkNestedDeclarations(reqs []domain.DependencyRequest) error {
	for i, a := range reqs {
		for _, b := range reqs[i+1:] {
			parent, child := a.Name, b.Name
			if child.IsStrictPrefixOf(parent) {
				parent, child = child, parent
			}
			if parent.IsStrictPrefixOf(child) {
				err := zerr.With(domain.ErrPackageConflict, "existing", parent.String())
				return zerr.With(err, "candidate", child.String())
			}
		}
	}
	return nil
}

// walk scans the frontier level by level. A candidate is scanned in turn only
// when it became the authoritative entry for its path.
func (e *Engine) walk(
	ctx context.Context,
	reg *registry.Registry,
	vendorDir string,
	frontier []node,
) error {
	scanned := make(map[string]bool)

	for len(frontier) > 0 {
		var (
			mu   sync.Mutex
			next []node
		)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(e.parallelism)
		for _, n := range frontier {
			key := n.dep.Name().String() + "@" + n.dep.Commit
			if scanned[key] {
				continue
			}
			scanned[key] = true

			g.Go(func() error {
				accepted, err := e.expand(gctx, reg, vendorDir, n)
				if err != nil {
					return err
				}
				mu.Lock()
				next = append(next, accepted...)
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		frontier = next
	}
	return nil
}

// expand registers the transitive candidates of n and returns the ones that won.
func (e *Engine) expand(
	ctx context.Context,
	reg *registry.Registry,
	vendorDir string,
	n node,
) ([]node, error) {
	candidates, err := e.scanner.Scan(ctx, vendorDir, n.dep)
	if err != nil {
		return nil, err
	}

	var accepted []node
	requires := make([]domain.PackagePath, 0, len(candidates))
	for _, candidate := range candidates {
		if excluded(n.excludes, candidate.Name()) {
			e.logger.Debug(fmt.Sprintf("excluding %s required by %s", candidate.Name(), n.dep.Name()))
			continue
		}
		requires = append(requires, candidate.Name())

		if candidate.Commit == "" {
			resolved, err := e.lookup(ctx, candidate.Name().String(), candidate.URL, candidate.Version, false, candidate.UpdateTime)
			if err != nil {
				return nil, err
			}
			candidate = resolved
		}

		ok, err := reg.Register(candidate)
		if err != nil {
			return nil, zerr.With(err, "required_by", n.dep.Name().String())
		}
		if ok {
			accepted = append(accepted, node{dep: candidate, excludes: n.excludes})
		}
	}
	n.dep.Dependencies = requires

	return accepted, nil
}

// lookup resolves one package version to a commit and reports progress.
// A zero updateTime is replaced by the lookup time.
func (e *Engine) lookup(
	ctx context.Context,
	name, url, version string,
	firstLevel bool,
	updateTime int64,
) (*domain.ResolvedDependency, error) {
	_, vertex := e.telemetry.Record(ctx, name)

	record, err := e.versions.Resolve(ctx, url, version)
	if err != nil {
		err = zerr.With(err, "package", name)
		vertex.Complete(err)
		return nil, err
	}
	vertex.Log(domain.LogLevelInfo, fmt.Sprintf("%s -> %s", record.Version, record.Commit))
	vertex.Complete(nil)

	if updateTime == 0 {
		resolvedAt := record.ResolvedAt
		if resolvedAt.IsZero() {
			resolvedAt = e.now()
		}
		updateTime = resolvedAt.UnixMilli()
	}

	dep := domain.NewResolvedDependency(name, firstLevel, updateTime)
	dep.Version = record.Version
	dep.Commit = record.Commit
	dep.URL = url
	return dep, nil
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidExcludePattern.Error()), "pattern", p)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func excluded(globs []glob.Glob, name domain.PackagePath) bool {
	for _, g := range globs {
		if g.Match(name.String()) {
			return true
		}
	}
	return false
}

// VendorDirFor returns the vendor directory of the manifest at manifestPath.
func VendorDirFor(manifestPath string, m *domain.Manifest) string {
	if filepath.IsAbs(m.Vendor) {
		return m.Vendor
	}
	return filepath.Join(filepath.Dir(manifestPath), m.Vendor)
}
