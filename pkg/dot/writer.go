package dot

import (
	"fmt"
	"io"
	"time"

	"github.com/includeviz/include2dot/pkg/graph"
)

const graphHeader = `
digraph "source tree" {
    overlap=scale;
    size="8,10";
    ratio="fill";
    fontsize="16";
    fontname="Helvetica";
    clusterrank="local";
    label="Include dependency diagram for '%s'; created by %s v%s at %s";
`

const subGraph = `
subgraph "cluster%s" {
    label="%s";
    "%s";
}
`

// Cluster is one directory-grouping block: a single node filed under a
// directory label. Occurrences are kept as-is, duplicates included.
type Cluster struct {
	Dir  string
	Node string
}

// Document is a fully collected include graph ready to be written as DOT
// text. Sections are emitted in a fixed order: header, clusters, edges,
// closing brace.
type Document struct {
	Root      string // basename of the scanned source root
	Program   string
	Version   string
	Timestamp time.Time
	Clusters  []Cluster
	Edges     []graph.Edge
}

// Write emits the document as DOT text.
func (d *Document) Write(w io.Writer) error {
	stamp := d.Timestamp.Format("Mon, 02 Jan 2006 15:04")
	if _, err := fmt.Fprintf(w, graphHeader, d.Root, d.Program, d.Version, stamp); err != nil {
		return err
	}

	for _, c := range d.Clusters {
		if _, err := fmt.Fprintf(w, subGraph, c.Dir, c.Dir, c.Node); err != nil {
			return err
		}
	}

	for _, e := range d.Edges {
		// Not %q: display names carry literal \n sequences for DOT.
		if _, err := fmt.Fprintf(w, "    \"%s\" -> \"%s\"", e.From, e.To); err != nil {
			return err
		}
		if e.Count > 1 {
			if _, err := fmt.Fprintf(w, " [penwidth=%d]", e.Count); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "}\n")
	return err
}

// WriteUnresolved writes the unresolved-include diagnostics, one per line.
// The caller passes them already deduplicated and sorted.
func WriteUnresolved(w io.Writer, unresolved []string) {
	for _, u := range unresolved {
		fmt.Fprintf(w, "Include file not found: %s\n", u)
	}
}
