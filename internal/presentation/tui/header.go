package tui

import (
	"github.com/muesli/termenv"
)

// Header styles a section label for terminal output. It degrades to plain
// text when the terminal reports no color support.
func Header(label string) string {
	p := termenv.ColorProfile()
	return termenv.String(label).Foreground(p.Color("#818cf8")).Bold().String()
}
