// Package cache implements the persistent key-value cache every resolution cache builds on.
package cache

import (
	"bytes"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/pin/internal/adapters/fs"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
)

// Key is the constraint on cache keys: usable as a map key and deep-copyable.
type Key[K any] interface {
	comparable
	domain.Cloneable[K]
}

// PersistentCache is an in-memory map that is loaded from and saved to one file.
// Entries are cloned on the way in and on the way out, so callers never share
// memory with the container.
type PersistentCache[K Key[K], V domain.Cloneable[V]] struct {
	name   string
	path   string
	codec  Codec
	logger ports.Logger

	mu        sync.RWMutex
	container map[K]V
}

var _ ports.PersistentCache = (*PersistentCache[domain.VersionKey, domain.CommitRecord])(nil)

type options struct {
	name  string
	codec Codec
}

// Option configures a PersistentCache.
type Option func(*options)

// WithName sets the name used in diagnostics. It defaults to the file name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithCodec sets the serialization format. It defaults to JSONCodec.
func WithCodec(codec Codec) Option {
	return func(o *options) {
		o.codec = codec
	}
}

// New creates an empty cache bound to the file at path.
func New[K Key[K], V domain.Cloneable[V]](path string, logger ports.Logger, opts ...Option) *PersistentCache[K, V] {
	cleanPath := filepath.Clean(path)
	o := options{
		name:  filepath.Base(cleanPath),
		codec: JSONCodec{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &PersistentCache[K, V]{
		name:      o.name,
		path:      cleanPath,
		codec:     o.codec,
		logger:    logger,
		container: make(map[K]V),
	}
}

// Name returns the cache name used in diagnostics.
func (c *PersistentCache[K, V]) Name() string {
	return c.name
}

// Path returns the backing file.
func (c *PersistentCache[K, V]) Path() string {
	return c.path
}

// Load replaces the container with the contents of the backing file.
// A missing file is reported at info level and leaves the container as it is.
// An unreadable or corrupt file is reported as a warning and also leaves the
// container as it is: a broken cache must never fail the caller.
func (c *PersistentCache[K, V]) Load() {
	if _, err := os.Stat(c.path); errors.Is(err, iofs.ErrNotExist) {
		c.logger.Info(fmt.Sprintf("cache %s not found at %s, skip", c.name, c.path))
		return
	}

	if err := c.load(); err != nil {
		c.logger.Warn(fmt.Sprintf("failed to load cache %s, skip", c.name))
		c.logger.Info(err.Error())
	}
}

// Save writes the container to the backing file, replacing it atomically.
// Failures are reported as a warning and leave the previous file untouched.
func (c *PersistentCache[K, V]) Save() {
	if err := c.save(); err != nil {
		c.logger.Warn(fmt.Sprintf("failed to save cache %s, skip", c.name))
		c.logger.Info(err.Error())
	}
}

func (c *PersistentCache[K, V]) load() error {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(c.path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", c.path)
	}

	if len(data) == 0 {
		return nil
	}

	loaded := make(map[K]V)
	if err := c.codec.Decode(bytes.NewReader(data), &loaded); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheDecodeFailed.Error()), "path", c.path)
	}
	if loaded == nil {
		loaded = make(map[K]V)
	}

	c.mu.Lock()
	c.container = loaded
	c.mu.Unlock()

	return nil
}

func (c *PersistentCache[K, V]) save() error {
	var buf bytes.Buffer

	c.mu.RLock()
	err := c.codec.Encode(&buf, c.container)
	c.mu.RUnlock()
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheEncodeFailed.Error()), "path", c.path)
	}

	if err := fs.WriteFileAtomic(c.path, buf.Bytes()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", c.path)
	}

	return nil
}

// Get returns a copy of the entry for key.
func (c *PersistentCache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.container[key]
	if !ok {
		var zero V
		return zero, false
	}
	return v.Clone(), true
}

// Put stores a copy of value under key.
func (c *PersistentCache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.container[key.Clone()] = value.Clone()
}

// Delete removes the entry for key.
func (c *PersistentCache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.container, key)
}

// Len returns the number of entries.
func (c *PersistentCache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.container)
}

// Clear drops every entry. The backing file is only affected by the next Save.
func (c *PersistentCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.container = make(map[K]V)
}
