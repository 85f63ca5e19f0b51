// Package git resolves requested versions to commits with git ls-remote.
package git

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Resolver implements ports.VersionResolver against remote git repositories.
// Lookups are served from the VersionCache when possible, and concurrent
// lookups of the same repository and version share one ls-remote call.
type Resolver struct {
	runner ports.CommandRunner
	cache  *VersionCache
	logger ports.Logger
	now    func() time.Time

	requestGroup singleflight.Group
}

var _ ports.VersionResolver = (*Resolver)(nil)

// NewResolver creates a new Resolver.
func NewResolver(runner ports.CommandRunner, cache *VersionCache, logger ports.Logger) *Resolver {
	return &Resolver{
		runner: runner,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

// Resolve maps version to a commit of the repository at url.
//
// A full commit hash is returned as is. An empty version, "latest" or "HEAD"
// selects the default branch head. Otherwise an exact tag or branch name wins,
// and anything else is treated as a semver constraint matched against tags.
func (r *Resolver) Resolve(ctx context.Context, url, version string) (domain.CommitRecord, error) {
	version = strings.TrimSpace(version)
	if isCommitHash(version) {
		return domain.CommitRecord{Commit: version, Version: version}, nil
	}

	key := domain.NewVersionKey(url, version)
	if record, ok := r.cache.Get(key); ok {
		r.logger.Debug(fmt.Sprintf("version cache hit for %s", key))
		return record, nil
	}

	result, err, _ := r.requestGroup.Do(string(key), func() (any, error) {
		if record, ok := r.cache.Get(key); ok {
			return record, nil
		}

		// The call is shared, so it must outlive the caller that started it.
		out, err := r.runner.Run(context.WithoutCancel(ctx), "git", []string{"ls-remote", url})
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrGitCommandFailed.Error()), "url", url)
		}

		record, err := selectRef(parseRefs(out), version)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "url", url), "version", version)
		}
		record.ResolvedAt = r.now().UTC()

		r.cache.Put(key, record)
		return record, nil
	})
	if err != nil {
		return domain.CommitRecord{}, err
	}

	return result.(domain.CommitRecord), nil
}

func selectRef(r refs, version string) (domain.CommitRecord, error) {
	switch version {
	case "", "latest", "HEAD":
		if r.head == "" {
			return domain.CommitRecord{}, zerr.With(domain.ErrVersionNotFound, "reason", "remote has no HEAD")
		}
		return domain.CommitRecord{Commit: r.head, Version: "HEAD"}, nil
	}

	if sha, ok := r.tags[version]; ok {
		return domain.CommitRecord{Commit: sha, Version: version}, nil
	}
	if sha, ok := r.heads[version]; ok {
		return domain.CommitRecord{Commit: sha, Version: version}, nil
	}

	return selectConstraint(r.tags, version)
}

// selectConstraint picks the highest semver tag satisfying the constraint.
func selectConstraint(tags map[string]string, version string) (domain.CommitRecord, error) {
	constraint, err := semver.NewConstraint(version)
	if err != nil {
		return domain.CommitRecord{}, zerr.Wrap(err, domain.ErrInvalidConstraint.Error())
	}

	type candidate struct {
		tag     string
		version *semver.Version
	}
	var matched []candidate
	for tag := range tags {
		v, err := semver.NewVersion(tag)
		if err != nil {
			continue
		}
		if constraint.Check(v) {
			matched = append(matched, candidate{tag: tag, version: v})
		}
	}

	if len(matched) == 0 {
		return domain.CommitRecord{}, domain.ErrVersionNotFound
	}

	// "v1.2.0" and "1.2.0" parse equal; the tag name breaks the tie so the choice is stable.
	best := slices.MaxFunc(matched, func(a, b candidate) int {
		if c := a.version.Compare(b.version); c != 0 {
			return c
		}
		return strings.Compare(a.tag, b.tag)
	})
	return domain.CommitRecord{Commit: tags[best.tag], Version: best.tag}, nil
}
