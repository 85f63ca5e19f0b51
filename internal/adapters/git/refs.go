package git

import (
	"bufio"
	"bytes"
	"strings"
)

const (
	headsPrefix  = "refs/heads/"
	tagsPrefix   = "refs/tags/"
	peeledSuffix = "^{}"
)

// refs is the parsed output of git ls-remote.
type refs struct {
	head  string
	heads map[string]string
	tags  map[string]string
}

// parseRefs parses "<sha>\t<ref>" lines. Peeled tag entries ("v1^{}") point at
// the tagged commit and take precedence over the tag object itself.
func parseRefs(out []byte) refs {
	r := refs{
		heads: make(map[string]string),
		tags:  make(map[string]string),
	}
	peeled := make(map[string]bool)

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		sha, ref, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "\t")
		if !ok || !isCommitHash(sha) {
			continue
		}

		switch {
		case ref == "HEAD":
			r.head = sha
		case strings.HasPrefix(ref, headsPrefix):
			r.heads[strings.TrimPrefix(ref, headsPrefix)] = sha
		case strings.HasPrefix(ref, tagsPrefix):
			name := strings.TrimPrefix(ref, tagsPrefix)
			if base, isPeeled := strings.CutSuffix(name, peeledSuffix); isPeeled {
				r.tags[base] = sha
				peeled[base] = true
				continue
			}
			if !peeled[name] {
				r.tags[name] = sha
			}
		}
	}
	return r
}

// isCommitHash reports whether s is a full hexadecimal SHA-1 or SHA-256 object name.
func isCommitHash(s string) bool {
	if len(s) != 40 && len(s) != 64 {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
