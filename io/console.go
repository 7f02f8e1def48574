// Package argio holds the engine's console boundary: an injectable sink for
// help and version output, TTY detection, and color styling. The engine
// itself never writes to the process streams directly.
package argio

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// defaultWidth is used when the output is not a terminal or the size probe
// fails.
const defaultWidth = 80

// Console is the log sink consumed by help and version rendering. The zero
// value is not usable; construct with New or NewWriter.
type Console struct {
	out   io.Writer
	err   io.Writer
	width int
	color bool
}

// New returns a Console bound to the process streams. Color and width are
// probed from stdout; a non-terminal gets plain output at the default width.
func New() *Console {
	c := &Console{out: os.Stdout, err: os.Stderr, width: defaultWidth}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		c.color = true
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			c.width = w
		}
	}
	return c
}

// NewWriter returns a Console writing to explicit streams, for embedding and
// tests. Color stays off.
func NewWriter(out, errOut io.Writer, width int) *Console {
	if width <= 0 {
		width = defaultWidth
	}
	return &Console{out: out, err: errOut, width: width}
}

// Log writes one message line to the output stream.
func (c *Console) Log(message string) {
	fmt.Fprintln(c.out, message)
}

// Error writes one message line to the error stream.
func (c *Console) Error(message string) {
	fmt.Fprintln(c.err, message)
}

// Width reports the usable line width for wrapped rendering.
func (c *Console) Width() int {
	return c.width
}

// Bold styles s for headings when color is enabled.
func (c *Console) Bold(s string) string {
	if !c.color {
		return s
	}
	return color.New(color.Bold).Sprint(s)
}

// Dim styles s for secondary text when color is enabled.
func (c *Console) Dim(s string) string {
	if !c.color {
		return s
	}
	return color.New(color.Faint).Sprint(s)
}
