// Package printer renders the consolidated digest artifact
package printer

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/fatih/color"
)

// Printer writes the three artifact sections (file listing, tree, file
// contents) to its output destination.
type Printer struct {
	output    io.Writer
	count     atomic.Int64
	useColors bool
}

// New creates a new Printer with default settings
func New() *Printer {
	return &Printer{
		output:    os.Stdout,
		useColors: true,
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithColors enables or disables colored section headings
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	return p
}

// PrintFileList writes the listing section, one relative path per line.
func (p *Printer) PrintFileList(paths []string) {
	p.heading("## Files")
	for _, path := range paths {
		fmt.Fprintf(p.output, "%s\n", path)
	}
	fmt.Fprint(p.output, "\n")
}

// PrintTree writes the tree section. The rendering is emitted as-is; its
// format is owned by the walker.
func (p *Printer) PrintTree(tree string) {
	p.heading("## Directory Tree")
	fmt.Fprint(p.output, tree)
	fmt.Fprint(p.output, "\n")
}

// PrintContentsHeading opens the contents section.
func (p *Printer) PrintContentsHeading() {
	p.heading("## Contents")
}

// PrintFile outputs the content of one file under a path header.
func (p *Printer) PrintFile(relativePath string, content []byte) {
	p.count.Add(1)
	fmt.Fprintf(p.output, "file: %s\n\n```\n%s\n```\n\n", relativePath, content)
}

// Count returns the number of files printed
func (p *Printer) Count() int64 {
	return p.count.Load()
}

func (p *Printer) heading(text string) {
	if p.useColors {
		text = color.New(color.FgCyan, color.Bold).Sprint(text)
	}
	fmt.Fprintf(p.output, "%s\n\n", text)
}
