package analysis

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/includeviz/include2dot/pkg/config"
	"github.com/includeviz/include2dot/pkg/dot"
	"github.com/includeviz/include2dot/pkg/finder"
	"github.com/includeviz/include2dot/pkg/graph"
	"github.com/includeviz/include2dot/pkg/include"
	"github.com/includeviz/include2dot/pkg/logging"
)

// Result holds everything one scan collected. Nothing is written while the
// scan runs; the emitter works from a complete Result.
type Result struct {
	FilesScanned int
	Graph        *graph.IncludeGraph
	Clusters     []dot.Cluster
	Unresolved   []string // deduplicated, sorted
}

// Run walks the configured source tree, extracts and resolves include
// directives, and accumulates the include graph. Unreadable files are
// logged and skipped; only the tree walk itself can fail the run.
func Run(cfg *config.Config) (*Result, error) {
	excluder := finder.NewExcluder(cfg.ExcludePatterns())
	files, err := finder.FindSourceFiles(cfg.Src, excluder)
	if err != nil {
		return nil, fmt.Errorf("finding source files: %w", err)
	}
	logging.Debug("collected source files", "count", len(files), "src", cfg.Src)

	pattern := include.Pattern(cfg.QuoteTypes)
	resolver := include.NewResolver(cfg.IncludeDirs())
	namer := graph.NewNamer(cfg.Merge, cfg.Paths)

	g := graph.NewIncludeGraph()
	notFound := make(map[string]struct{})
	var clusters []dot.Cluster
	scanned := 0

	for _, file := range files {
		refs, err := include.ScanFile(file, pattern)
		if err != nil {
			logging.Warn("cannot read source file, skipping", "path", file, "error", err)
			continue
		}
		scanned++

		for _, ref := range refs {
			token := include.CleanToken(ref.Token)
			resolved, ok := resolver.Resolve(token, file)
			if !ok {
				notFound[fmt.Sprintf("%s from %s", ref.Token, file)] = struct{}{}
				continue
			}

			if cfg.Merge == config.MergeDirectory {
				g.AddInclude(filepath.Dir(file), filepath.Dir(resolved))
				continue
			}

			fileDisplay := namer.DisplayName(file)
			includeDisplay := namer.DisplayName(resolved)

			if cfg.Groups {
				clusters = append(clusters,
					dot.Cluster{Dir: filepath.Dir(resolved), Node: includeDisplay},
					dot.Cluster{Dir: filepath.Dir(file), Node: fileDisplay},
				)
			}

			g.AddInclude(fileDisplay, includeDisplay)
		}
	}

	unresolved := make([]string, 0, len(notFound))
	for u := range notFound {
		unresolved = append(unresolved, u)
	}
	sort.Strings(unresolved)

	return &Result{
		FilesScanned: scanned,
		Graph:        g,
		Clusters:     clusters,
		Unresolved:   unresolved,
	}, nil
}
