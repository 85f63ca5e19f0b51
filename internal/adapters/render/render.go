// Package render formats registry contents for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.trai.ch/pin/internal/core/domain"
)

const shortCommitLen = 12

// Table renders deps as a table with one row per package.
func Table(deps []*domain.ResolvedDependency) string {
	rows := make([][]string, 0, len(deps))
	for _, dep := range deps {
		rows = append(rows, []string{
			dep.Name().String(),
			versionOf(dep),
			ShortCommit(dep.Commit),
			kindOf(dep),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(deps) && deps[row].FirstLevel:
				return firstLevelStyle
			default:
				return transitiveStyle
			}
		}).
		Headers("PACKAGE", "VERSION", "COMMIT", "KIND").
		Rows(rows...)

	return t.String()
}

// Entry renders the entry governing query.
func Entry(query domain.PackagePath, dep *domain.ResolvedDependency) string {
	var b strings.Builder

	line := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-9s", label+":")), value)
	}

	line("path", query.String())
	line("package", dep.Name().String())
	line("version", versionOf(dep))
	line("commit", dep.Commit)
	if dep.URL != "" {
		line("url", dep.URL)
	}
	line("kind", kindOf(dep))
	if len(dep.Dependencies) > 0 {
		requires := make([]string, len(dep.Dependencies))
		for i, p := range dep.Dependencies {
			requires[i] = p.String()
		}
		line("requires", strings.Join(requires, ", "))
	}

	return b.String()
}

// ShortCommit abbreviates a commit hash for display.
func ShortCommit(commit string) string {
	if len(commit) <= shortCommitLen {
		return commit
	}
	return commit[:shortCommitLen]
}

func versionOf(dep *domain.ResolvedDependency) string {
	if dep.Version == "" {
		return "-"
	}
	return dep.Version
}

func kindOf(dep *domain.ResolvedDependency) string {
	if dep.FirstLevel {
		return "direct"
	}
	return "transitive"
}
