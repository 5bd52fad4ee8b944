package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlay writes glyph over line starting at cell x, keeping the styling of
// the cells around it. Short lines are padded with spaces.
func overlay(line string, x int, glyph string) string {
	if x < 0 {
		return line
	}
	if w := ansi.StringWidth(line); w < x {
		line += strings.Repeat(" ", x-w)
	}
	gw := ansi.StringWidth(glyph)
	return ansi.Truncate(line, x, "") + glyph + ansi.TruncateLeft(line, x+gw, "")
}

// canvas is a screen's worth of rendered lines that glyphs can be stamped on.
type canvas struct {
	lines []string
	width int
}

func (c *canvas) put(x, y int, glyph string) {
	if y < 0 || y >= len(c.lines) || x < 0 || x >= c.width {
		return
	}
	c.lines[y] = overlay(c.lines[y], x, glyph)
}

func (c *canvas) String() string {
	return joinLines(c.lines)
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
