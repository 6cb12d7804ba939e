package include

import (
	"bufio"
	"os"
	"regexp"
	"strings"

	"github.com/includeviz/include2dot/pkg/config"
)

// Reference is one include directive found in a source file. Token keeps
// the delimiters exactly as matched; Line is kept for diagnostics only.
type Reference struct {
	Token string
	File  string
	Line  int
}

var (
	angleRegex = regexp.MustCompile(`^#\s*include\s+<(\S+)>`)
	quoteRegex = regexp.MustCompile(`^#\s*include\s+"(\S+)"`)
	bothRegex  = regexp.MustCompile(`^#\s*include\s+(\S+)`)
)

// Pattern returns the include-directive regex for a quote-style filter.
func Pattern(quoteTypes string) *regexp.Regexp {
	switch quoteTypes {
	case config.QuoteAngle:
		return angleRegex
	case config.QuoteQuote:
		return quoteRegex
	default:
		return bothRegex
	}
}

// ScanFile reads one source file and returns every include reference whose
// directive matches pattern. The file is fully consumed and closed before
// returning.
func ScanFile(path string, pattern *regexp.Regexp) ([]Reference, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var refs []Reference
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		m := pattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		refs = append(refs, Reference{
			Token: m[1],
			File:  path,
			Line:  lineNo,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}

// CleanToken strips the quote and angle-bracket delimiters from a raw
// include token. The "both" pattern captures them along with the name.
func CleanToken(token string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '"':
			return -1
		}
		return r
	}, token)
}
