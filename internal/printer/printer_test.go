package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestPrinter(buf *bytes.Buffer) *Printer {
	return New().WithOutput(buf).WithColors(false)
}

func TestPrintFileList(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf)

	p.PrintFileList([]string{"src/a.txt", "top.md"})

	assert.Equal(t, "## Files\n\nsrc/a.txt\ntop.md\n\n", buf.String())
}

func TestPrintTree(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf)

	p.PrintTree("- src\n  - a.txt\n")

	assert.Equal(t, "## Directory Tree\n\n- src\n  - a.txt\n\n", buf.String())
}

func TestPrintFile(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf)

	p.PrintFile("src/a.txt", []byte("hello"))

	assert.Equal(t, "file: src/a.txt\n\n```\nhello\n```\n\n", buf.String())
	assert.Equal(t, int64(1), p.Count())
}

func TestCountAccumulates(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf)

	p.PrintFile("a", []byte("x"))
	p.PrintFile("b", []byte("y"))
	p.PrintFile("c", []byte("z"))

	assert.Equal(t, int64(3), p.Count())
}
