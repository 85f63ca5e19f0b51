// Package app implements the application layer for pin.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/pin/internal/adapters/render"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/pin/internal/engine/registry"
	"go.trai.ch/pin/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader    ports.ManifestLoader
	engine    *resolver.Engine
	telemetry ports.Telemetry
	logger    ports.Logger
	cacheDir  string
}

// New creates a new App instance.
func New(
	loader ports.ManifestLoader,
	engine *resolver.Engine,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		loader:    loader,
		engine:    engine,
		telemetry: telemetry,
		logger:    logger,
		cacheDir:  domain.DefaultCachePath(),
	}
}

// WithCacheDir overrides the cache directory removed by Clean.
func (a *App) WithCacheDir(dir string) *App {
	a.cacheDir = dir
	return a
}

// ResolveOptions configuration for the commands that resolve the manifest.
type ResolveOptions struct {
	ConfigPath string
	Update     bool
	NoLock     bool
}

// Resolve resolves the manifest and writes the lock file unless disabled.
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) error {
	reg, err := a.resolve(ctx, opts, !opts.NoLock)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("resolved %d packages", reg.Len()))
	return nil
}

// List resolves the manifest and prints every registered package to w.
func (a *App) List(ctx context.Context, w io.Writer, opts ResolveOptions) error {
	reg, err := a.resolve(ctx, opts, false)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, render.Table(reg.All()))
	return err
}

// Which resolves the manifest and prints the package that governs path.
func (a *App) Which(ctx context.Context, w io.Writer, path string, opts ResolveOptions) error {
	reg, err := a.resolve(ctx, opts, false)
	if err != nil {
		return err
	}

	query := domain.NewPackagePath(path)
	dep, ok := reg.Retrieve(query)
	if !ok {
		return zerr.With(domain.ErrPackageNotFound, "path", path)
	}

	_, err = fmt.Fprint(w, render.Entry(query, dep))
	return err
}

// Clean removes the resolution caches.
func (a *App) Clean(_ context.Context) error {
	a.logger.Info(fmt.Sprintf("removing %s...", a.cacheDir))
	if err := os.RemoveAll(a.cacheDir); err != nil {
		return zerr.Wrap(err, "failed to remove cache directory")
	}
	a.logger.Info(fmt.Sprintf("removed %s", a.cacheDir))
	return nil
}

// SetVerbose switches debug logging on or off when the logger supports it.
func (a *App) SetVerbose(verbose bool) {
	if l, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		l.SetVerbose(verbose)
	}
}

// Close flushes telemetry.
func (a *App) Close() error {
	return a.telemetry.Close()
}

func (a *App) resolve(ctx context.Context, opts ResolveOptions, writeLock bool) (*registry.Registry, error) {
	path := opts.ConfigPath
	if path == "" {
		path = domain.ManifestFileName
	}

	manifest, err := a.loader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	reg, err := a.engine.Resolve(ctx, manifest, resolver.Options{
		Update:    opts.Update,
		WriteLock: writeLock,
		LockPath:  domain.LockPathFor(path),
		VendorDir: resolver.VendorDirFor(path, manifest),
	})
	if err != nil {
		return nil, errors.Join(domain.ErrResolutionFailed, err)
	}
	return reg, nil
}
