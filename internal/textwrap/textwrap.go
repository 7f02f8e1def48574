// Package textwrap provides the line wrapping and two-column alignment used
// by the help renderer.
package textwrap

import "strings"

// Wrap breaks text into lines of at most width characters, splitting on
// spaces. Words longer than width get a line of their own.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

// Row is one left/right pair in a columned layout.
type Row struct {
	Left  string
	Right string
}

// Columns lays out rows as two aligned columns within width. The left column
// is padded to the widest left cell plus gap; the right column wraps, with
// continuation lines indented under the right column's start.
func Columns(rows []Row, indent, gap, width int) string {
	leftWidth := 0
	for _, r := range rows {
		if len(r.Left) > leftWidth {
			leftWidth = len(r.Left)
		}
	}

	rightStart := indent + leftWidth + gap
	rightWidth := width - rightStart
	if rightWidth < 20 {
		rightWidth = 20
	}

	var b strings.Builder
	pad := strings.Repeat(" ", indent)
	cont := strings.Repeat(" ", rightStart)
	for _, r := range rows {
		b.WriteString(pad)
		b.WriteString(r.Left)
		if r.Right == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString(strings.Repeat(" ", leftWidth-len(r.Left)+gap))
		for i, line := range Wrap(r.Right, rightWidth) {
			if i > 0 {
				b.WriteString(cont)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}
