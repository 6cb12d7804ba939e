package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/includeviz/include2dot/pkg/analysis"
	"github.com/includeviz/include2dot/pkg/config"
	"github.com/includeviz/include2dot/pkg/dot"
	"github.com/includeviz/include2dot/pkg/logging"
	"github.com/includeviz/include2dot/pkg/output"
	"github.com/includeviz/include2dot/pkg/render"
)

const (
	programName    = "include2dot"
	programVersion = "0.1.0"
)

const usageText = `Usage: %s [OPTIONS]...
%s v%s

Visualizes #include relationships between every C/C++ source and header file
under a directory as a graph in DOT syntax. To generate a dependency graph:

1. $ cd ~/program/src
2. $ %s > include_dep.dot
3. $ dot -Tpng include_dep.dot > include_dep.png
or in one step: $ %s -t png -o include_dep.png

Options:
-d, --debug      Display various debug info
-e, --exclude    Specify patterns of filenames to ignore,
                 for example your test harnesses.
-m, --merge      Granularity of the diagram:
                    file - the default, treats each file as separate
                    module - merges .c/.cc/.cpp/.cxx and .h/.hpp/.hxx pairs
                    directory - merges directories into one node
-g, --groups     Cluster files or modules into directory groups
-h, --help       Print this help
-i, --include    Followed by a comma separated list of include search paths
-o, --output     Outputs the DOT graph to the specified file
-p, --paths      Leaves relative paths in displayed filenames
-q, --quotetypes Select the include quoting styles to parse:
                    both - the default, parse all includes
                    angle - only system includes (<...>)
                    quote - only "user" includes ("...")
-s, --src        Followed by a path to the source code, defaults to the
                 current directory
-t, --type       Specifies the file type for the generated graph (e.g. png
                 or pdf); default is DOT file format
-v, --version    Print program version
`

func printUsage(w io.Writer) {
	fmt.Fprintf(w, usageText, programName, programName, programVersion, programName, programName)
}

func main() {
	flags := config.Flags()
	flags.SetOutput(io.Discard) // usage is printed by hand below

	if err := flags.Parse(os.Args[1:]); err != nil {
		printUsage(os.Stdout)
		os.Exit(1)
	}

	if help, _ := flags.GetBool("help"); help {
		printUsage(os.Stdout)
		return
	}
	if version, _ := flags.GetBool("version"); version {
		fmt.Printf("%s v%s\n", programName, programVersion)
		return
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage(os.Stdout)
		os.Exit(1)
	}

	logging.Setup(cfg.Debug)

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	result, err := analysis.Run(cfg)
	if err != nil {
		return err
	}

	doc := &dot.Document{
		Root:      rootLabel(cfg.Src),
		Program:   programName,
		Version:   programVersion,
		Timestamp: time.Now(),
		Clusters:  result.Clusters,
		Edges:     result.Graph.Edges(),
	}

	if err := emit(cfg, doc); err != nil {
		return err
	}

	dot.WriteUnresolved(os.Stderr, result.Unresolved)

	if cfg.Debug {
		output.PrintScanSummary(os.Stderr, cfg.Src,
			result.FilesScanned, result.Graph.Len(), len(result.Unresolved))
	}

	return nil
}

func emit(cfg *config.Config, doc *dot.Document) error {
	if cfg.Type != config.OutputTypeDot {
		var buf bytes.Buffer
		if err := doc.Write(&buf); err != nil {
			return err
		}
		return render.NewDotRenderer().Render(context.Background(), cfg.Type, &buf, cfg.Output)
	}

	if cfg.Output == "" {
		return doc.Write(os.Stdout)
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return doc.Write(f)
}

// rootLabel names the scanned tree in the graph label: the basename of the
// absolute source root.
func rootLabel(src string) string {
	abs, err := filepath.Abs(src)
	if err != nil {
		return filepath.Base(src)
	}
	return filepath.Base(abs)
}
