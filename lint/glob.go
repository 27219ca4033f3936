package lint

import (
	"path"
	"strings"

	"github.com/gobwas/glob"
)

// Pattern is a compiled file pattern.
//
// A pattern containing no "/" is matched against the base name of a path,
// so "*.test.ts" matches "src/foo.test.ts". Other patterns are matched
// against the whole slash-separated relative path; a leading "/" or "./"
// anchors them to the base directory and is dropped. "*" stays within a
// path segment, "**" crosses segments. A "**/" segment also matches zero
// directories and a trailing "/**" also matches the directory itself.
type Pattern struct {
	raw       string
	negate    bool
	dirOnly   bool
	matchBase bool
	globs     []glob.Glob
}

// CompilePattern compiles an override pattern.
func CompilePattern(raw string) (*Pattern, error) {
	return compile(raw, false)
}

// CompileIgnorePattern compiles a gitignore-style pattern. A leading "!"
// negates it and a trailing "/" restricts it to directories.
func CompileIgnorePattern(raw string) (*Pattern, error) {
	return compile(raw, true)
}

func compile(raw string, ignore bool) (*Pattern, error) {
	p := &Pattern{raw: raw}
	expr := strings.TrimSpace(raw)
	if ignore {
		if strings.HasPrefix(expr, "!") {
			p.negate = true
			expr = expr[1:]
		}
		if strings.HasSuffix(expr, "/") {
			p.dirOnly = true
			expr = strings.TrimRight(expr, "/")
		}
	}
	if expr == "" {
		return nil, &GlobSyntaxError{Pattern: raw, Err: errEmptyPattern}
	}

	anchored := false
	switch {
	case strings.HasPrefix(expr, "./"):
		expr = strings.TrimPrefix(expr, "./")
		anchored = true
	case strings.HasPrefix(expr, "/"):
		expr = strings.TrimLeft(expr, "/")
		anchored = true
	}
	p.matchBase = !anchored && !strings.Contains(expr, "/")

	for _, variant := range globstarVariants(expr) {
		g, err := glob.Compile(variant, '/')
		if err != nil {
			return nil, &GlobSyntaxError{Pattern: raw, Err: err}
		}
		p.globs = append(p.globs, g)
	}
	return p, nil
}

// globstarVariants lists the expressions a pattern stands for: every
// combination of its "**/" segments kept or dropped, plus the directory
// itself for a trailing "/**".
func globstarVariants(expr string) []string {
	bases := []string{expr}
	if dir, ok := strings.CutSuffix(expr, "/**"); ok && dir != "" {
		bases = append(bases, dir)
	}
	var out []string
	for _, b := range bases {
		out = append(out, dropGlobstars(b, 0)...)
	}
	return out
}

func dropGlobstars(expr string, from int) []string {
	i := indexGlobstar(expr, from)
	if i < 0 {
		return []string{expr}
	}
	kept := dropGlobstars(expr, i+len("**/"))
	dropped := dropGlobstars(expr[:i]+expr[i+len("**/"):], i)
	return append(kept, dropped...)
}

// indexGlobstar returns the index of the first "**/" at or after from that
// starts a path segment, or -1.
func indexGlobstar(expr string, from int) int {
	for from <= len(expr) {
		i := strings.Index(expr[from:], "**/")
		if i < 0 {
			return -1
		}
		i += from
		if i == 0 || expr[i-1] == '/' {
			return i
		}
		from = i + 1
	}
	return -1
}

type patternError string

func (e patternError) Error() string { return string(e) }

const errEmptyPattern = patternError("empty pattern")

// String returns the pattern as written.
func (p *Pattern) String() string {
	return p.raw
}

// Match reports whether the slash-separated relative path matches.
func (p *Pattern) Match(relPath string) bool {
	if p.matchBase {
		relPath = path.Base(relPath)
	}
	for _, g := range p.globs {
		if g.Match(relPath) {
			return true
		}
	}
	return false
}

// CompilePatterns compiles every pattern, failing on the first invalid one.
func CompilePatterns(raws []string) ([]*Pattern, error) {
	out := make([]*Pattern, 0, len(raws))
	for _, raw := range raws {
		p, err := CompilePattern(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// IgnoreMatcher applies gitignore-style patterns in order; the last
// matching pattern decides. A path is ignored when it or any of its parent
// directories is ignored.
type IgnoreMatcher struct {
	patterns []*Pattern
}

// NewIgnoreMatcher compiles the given ignore patterns.
func NewIgnoreMatcher(raws []string) (*IgnoreMatcher, error) {
	m := &IgnoreMatcher{patterns: make([]*Pattern, 0, len(raws))}
	for _, raw := range raws {
		if strings.TrimSpace(raw) == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		p, err := CompileIgnorePattern(raw)
		if err != nil {
			return nil, err
		}
		m.patterns = append(m.patterns, p)
	}
	return m, nil
}

// Ignored reports whether the relative path is ignored. A trailing "/"
// marks the path itself as a directory.
func (m *IgnoreMatcher) Ignored(relPath string) bool {
	if m == nil || len(m.patterns) == 0 {
		return false
	}
	isDir := strings.HasSuffix(relPath, "/")
	clean := cleanRel(relPath)
	if clean == "" {
		return false
	}
	segs := strings.Split(clean, "/")
	for i := 1; i <= len(segs); i++ {
		prefix := strings.Join(segs[:i], "/")
		if m.decide(prefix, i < len(segs) || isDir) {
			return true
		}
	}
	return false
}

func (m *IgnoreMatcher) decide(prefix string, isDir bool) bool {
	ignored := false
	for _, p := range m.patterns {
		if p.dirOnly && !isDir {
			continue
		}
		if p.Match(prefix) {
			ignored = !p.negate
		}
	}
	return ignored
}

// cleanRel normalizes a path to the slash-separated relative form patterns
// are matched against.
func cleanRel(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = path.Clean(p)
	p = strings.TrimPrefix(p, "./")
	if p == "." {
		return ""
	}
	return p
}
