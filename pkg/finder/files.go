package finder

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/includeviz/include2dot/pkg/logging"
)

// C/C++ source and header suffixes, matched case-sensitively.
var sourceSuffixes = map[string]bool{
	"c":   true,
	"cc":  true,
	"cxx": true,
	"cpp": true,
	"C":   true,
	"h":   true,
	"hpp": true,
	"hxx": true,
}

// Excluder drops collected files whose relative path matches one of the
// configured patterns. Patterns with glob metacharacters are shell globs;
// plain patterns match as substrings of the relative path.
type Excluder struct {
	globs      []glob.Glob
	substrings []string
}

// NewExcluder compiles the given patterns.
func NewExcluder(patterns []string) *Excluder {
	e := &Excluder{}
	for _, p := range patterns {
		if !strings.ContainsAny(p, `*?[{\`) {
			e.substrings = append(e.substrings, p)
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			logging.Debug("exclude pattern is not a valid glob, using substring match", "pattern", p)
			e.substrings = append(e.substrings, p)
			continue
		}
		e.globs = append(e.globs, g)
	}
	return e
}

// Match reports whether path is excluded.
func (e *Excluder) Match(path string) bool {
	for _, g := range e.globs {
		if g.Match(path) {
			return true
		}
	}
	for _, s := range e.substrings {
		if strings.Contains(path, s) {
			return true
		}
	}
	return false
}

// FindSourceFiles walks the source root and returns every C/C++ source or
// header file, as paths relative to the current working directory. Files
// matching the excluder are dropped. Unreadable directories are logged and
// skipped rather than aborting the walk.
func FindSourceFiles(root string, exclude *Excluder) ([]string, error) {
	var sourceFiles []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logging.Warn("cannot read directory entry, skipping", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.TrimPrefix(filepath.Ext(d.Name()), ".")
		if !sourceSuffixes[ext] {
			return nil
		}

		rel, relErr := filepath.Rel(".", path)
		if relErr != nil {
			rel = path
		}
		rel = strings.TrimPrefix(rel, "./")

		if exclude != nil && exclude.Match(rel) {
			logging.Debug("excluding file", "path", rel)
			return nil
		}

		sourceFiles = append(sourceFiles, rel)
		return nil
	})

	return sourceFiles, err
}
