package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrintScanSummary prints a short colorized report about one scan. It is
// shown in debug mode only and goes to the diagnostic stream, never into
// the graph text.
func PrintScanSummary(w io.Writer, src string, filesScanned, edges, unresolved int) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	bold.Fprintln(w, "include2dot scan summary")
	fmt.Fprintf(w, "Source root: %s\n", src)
	fmt.Fprintf(w, "Scanned: %d source files\n", filesScanned)
	fmt.Fprintf(w, "Edges: %d\n", edges)

	if unresolved == 0 {
		green.Fprintln(w, "Unresolved includes: 0")
	} else {
		yellow.Fprintf(w, "Unresolved includes: %d\n", unresolved)
	}
}
