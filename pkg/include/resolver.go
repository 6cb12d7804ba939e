package include

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/includeviz/include2dot/pkg/logging"
)

// parentRegex matches one redundant "segment/../" pair.
var parentRegex = regexp.MustCompile(`[^/]+?/\.\./`)

// TidyPath removes redundant segment/../ pairs from a path, the way a
// preprocessor would canonicalize a relative include.
func TidyPath(path string) string {
	return parentRegex.ReplaceAllString(path, "")
}

// Resolver maps include tokens to files on disk using an ordered candidate
// search: relative to the including file first, then each extra include
// directory in flag order, then the token itself relative to the working
// directory.
type Resolver struct {
	includeDirs []string
}

// NewResolver creates a resolver with the configured include search paths.
func NewResolver(includeDirs []string) *Resolver {
	return &Resolver{includeDirs: includeDirs}
}

// Resolve returns the first existing candidate path for token, referenced
// from fromFile. The second result is false when no candidate exists.
func (r *Resolver) Resolve(token, fromFile string) (string, bool) {
	logging.Debug("include search", "token", token, "from", fromFile)

	dir := filepath.Dir(fromFile)
	rel := TidyPath(filepath.ToSlash(filepath.Join(dir, token)))
	logging.Debug("include search trying", "candidate", rel, "dirname", dir)
	if exists(rel) {
		return rel, true
	}

	for _, inc := range r.includeDirs {
		candidate := TidyPath(filepath.ToSlash(filepath.Join(inc, token)))
		logging.Debug("include search trying", "candidate", candidate)
		if exists(candidate) {
			return candidate, true
		}
	}

	if exists(token) {
		return token, true
	}

	logging.Debug("include search failed", "token", token, "from", fromFile)
	return "", false
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
