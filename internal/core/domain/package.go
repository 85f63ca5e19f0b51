// Package domain contains the core domain models for dependency resolution.
package domain

import (
	"iter"
	"strings"
)

// PackagePath is a slash-separated package path such as "github.com/org/repo/sub".
// Paths are compared segment by segment, so "github.com/a/b" is an ancestor of
// "github.com/a/b/c" but not of "github.com/a/bc".
type PackagePath string

// NewPackagePath normalises s into a PackagePath.
// Backslashes become slashes, and empty or "." segments are dropped.
func NewPackagePath(s string) PackagePath {
	return PackagePath(strings.Join(splitSegments(s), "/"))
}

// String returns the path as a plain string.
func (p PackagePath) String() string {
	return string(p)
}

// Segments returns the non-empty path segments.
func (p PackagePath) Segments() []string {
	return splitSegments(string(p))
}

// Depth returns the number of segments in the path.
func (p PackagePath) Depth() int {
	return len(p.Segments())
}

// IsPrefixOf reports whether p equals other or is one of its ancestors.
func (p PackagePath) IsPrefixOf(other PackagePath) bool {
	mine := p.Segments()
	theirs := other.Segments()
	if len(mine) == 0 || len(mine) > len(theirs) {
		return false
	}
	for i, seg := range mine {
		if theirs[i] != seg {
			return false
		}
	}
	return true
}

// IsStrictPrefixOf reports whether p is an ancestor of other and not other itself.
func (p PackagePath) IsStrictPrefixOf(other PackagePath) bool {
	return p.Depth() < other.Depth() && p.IsPrefixOf(other)
}

// Ancestors yields p itself and then every shorter prefix, down to the first segment.
// The walk is bounded by the depth of the path.
func (p PackagePath) Ancestors() iter.Seq[PackagePath] {
	return func(yield func(PackagePath) bool) {
		segs := p.Segments()
		for i := len(segs); i > 0; i-- {
			if !yield(PackagePath(strings.Join(segs[:i], "/"))) {
				return
			}
		}
	}
}

// Clone returns p. Strings are immutable, so the copy is already independent.
func (p PackagePath) Clone() PackagePath {
	return p
}

func splitSegments(s string) []string {
	parts := strings.Split(strings.ReplaceAll(s, `\`, "/"), "/")
	segs := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" || part == "." {
			continue
		}
		segs = append(segs, part)
	}
	return segs
}
