package source

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// compiledPattern holds both the pattern string and compiled glob
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Matcher decides whether a path looks like a source file this tool
// understands.
type Matcher struct {
	patterns       []compiledPattern
	ignorePatterns []compiledPattern
}

// NewMatcher compiles the include and ignore glob patterns.
func NewMatcher(patterns, ignorePatterns []string) (*Matcher, error) {
	m := &Matcher{}

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		m.patterns = append(m.patterns, compiledPattern{pattern: pattern, glob: g})
	}

	for _, pattern := range ignorePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		m.ignorePatterns = append(m.ignorePatterns, compiledPattern{pattern: pattern, glob: g})
	}

	return m, nil
}

// Match reports whether path matches an include pattern and no ignore
// pattern. Relative paths are matched as given; absolute paths are also tried
// relative to the working directory.
func (m *Matcher) Match(path string) bool {
	for _, candidate := range candidates(path) {
		if matchesAnyPattern(candidate, m.ignorePatterns) {
			return false
		}
	}
	for _, candidate := range candidates(path) {
		if matchesAnyPattern(candidate, m.patterns) {
			return true
		}
	}
	return false
}

// candidates returns slash-separated forms of path to match against.
func candidates(path string) []string {
	out := []string{filepath.ToSlash(filepath.Clean(path))}
	if filepath.IsAbs(path) {
		if wd, err := filepath.Abs("."); err == nil {
			if rel, err := filepath.Rel(wd, path); err == nil && !strings.HasPrefix(rel, "..") {
				out = append(out, filepath.ToSlash(rel))
			}
		}
	}
	return out
}

// matchesAnyPattern checks if a path matches any of the given patterns.
func matchesAnyPattern(path string, patterns []compiledPattern) bool {
	for _, cp := range patterns {
		if cp.glob.Match(path) {
			return true
		}
	}

	// A file in the root has no slash, so "**/*.java" must also match it
	// with the **/ prefix removed.
	if !strings.Contains(path, "/") {
		for _, cp := range patterns {
			if strings.HasPrefix(cp.pattern, "**/") {
				simplified := strings.TrimPrefix(cp.pattern, "**/")
				if simplifiedGlob, err := glob.Compile(simplified, '/'); err == nil {
					if simplifiedGlob.Match(path) {
						return true
					}
				}
			}
		}
	}

	return false
}
