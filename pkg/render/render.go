package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Renderer turns DOT text into a rendered graph in the given format.
type Renderer interface {
	Render(ctx context.Context, format string, dot io.Reader, outputPath string) error
}

// DotRenderer is the default implementation that shells out to Graphviz.
type DotRenderer struct {
	tool string
}

// NewDotRenderer creates a renderer backed by the dot executable.
func NewDotRenderer() Renderer {
	return &DotRenderer{tool: "dot"}
}

// Render pipes the DOT text through `dot -T<format>`. With an empty
// outputPath the rendered bytes go to stdout. The call blocks until the
// child process exits; its failure is propagated untouched.
func (r *DotRenderer) Render(ctx context.Context, format string, dot io.Reader, outputPath string) error {
	args := []string{"-T" + format}
	if outputPath != "" {
		args = append(args, "-o", outputPath)
	}

	cmd := exec.CommandContext(ctx, r.tool, args...)
	cmd.Stdin = dot
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s -T%s failed: %w", r.tool, format, err)
	}

	return nil
}
