package domain_test

import (
	"slices"
	"testing"

	"go.trai.ch/pin/internal/core/domain"
)

func TestNewPackagePath(t *testing.T) {
	tests := []struct {
		in   string
		want domain.PackagePath
	}{
		{"github.com/a/b", "github.com/a/b"},
		{"/github.com//a/b/", "github.com/a/b"},
		{`github.com\a\b`, "github.com/a/b"},
		{"./github.com/a", "github.com/a"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := domain.NewPackagePath(tt.in); got != tt.want {
			t.Errorf("NewPackagePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPackagePath_IsPrefixOf(t *testing.T) {
	tests := []struct {
		name   string
		p      domain.PackagePath
		other  domain.PackagePath
		prefix bool
		strict bool
	}{
		{"identical", "github.com/a/b", "github.com/a/b", true, false},
		{"parent", "github.com/a", "github.com/a/b", true, true},
		{"grandparent", "github.com", "github.com/a/b", true, true},
		{"string prefix is not a path prefix", "github.com/a/b", "github.com/a/bc", false, false},
		{"child is not a prefix of parent", "github.com/a/b/c", "github.com/a/b", false, false},
		{"sibling", "github.com/a/c", "github.com/a/b", false, false},
		{"empty", "", "github.com/a", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.IsPrefixOf(tt.other); got != tt.prefix {
				t.Errorf("IsPrefixOf = %v, want %v", got, tt.prefix)
			}
			if got := tt.p.IsStrictPrefixOf(tt.other); got != tt.strict {
				t.Errorf("IsStrictPrefixOf = %v, want %v", got, tt.strict)
			}
		})
	}
}

func TestPackagePath_Ancestors(t *testing.T) {
	p := domain.NewPackagePath("github.com/a/b/c")

	got := slices.Collect(p.Ancestors())
	want := []domain.PackagePath{"github.com/a/b/c", "github.com/a/b", "github.com/a", "github.com"}

	if !slices.Equal(got, want) {
		t.Errorf("Ancestors() = %v, want %v", got, want)
	}

	// Stopping early must not yield further paths.
	var first []domain.PackagePath
	for a := range p.Ancestors() {
		first = append(first, a)
		break
	}
	if len(first) != 1 || first[0] != p {
		t.Errorf("expected only the full path before break, got %v", first)
	}

	if n := len(slices.Collect(domain.PackagePath("").Ancestors())); n != 0 {
		t.Errorf("expected no ancestors for empty path, got %d", n)
	}
}
