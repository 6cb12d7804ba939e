package graph

import (
	"path/filepath"
	"strings"

	"github.com/includeviz/include2dot/pkg/config"
)

// moduleSuffixes are stripped from display names under module merge, so a
// source/header pair collapses into one node.
var moduleSuffixes = []string{".c", ".cc", ".cxx", ".cpp", ".C", ".h", ".hpp", ".hxx"}

// Namer turns resolved file paths into graph node labels.
type Namer struct {
	merge     string
	keepPaths bool
}

// NewNamer creates a namer for the given merge granularity. keepPaths
// retains the full relative path instead of reducing to the basename.
func NewNamer(merge string, keepPaths bool) *Namer {
	return &Namer{merge: merge, keepPaths: keepPaths}
}

// DisplayName converts a file path to its display version.
func (n *Namer) DisplayName(path string) string {
	if !n.keepPaths {
		path = filepath.Base(path)
	}

	if n.merge == config.MergeModule {
		for _, suffix := range moduleSuffixes {
			path = strings.TrimSuffix(path, suffix)
		}
	}

	// Break labels at path separators so DOT wraps long paths.
	return strings.ReplaceAll(path, "/", "/\\n")
}
