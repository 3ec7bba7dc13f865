package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"oss.indeed.com/go/unitrun/unit"
)

// Style colours progress output by outcome.
type Style struct {
	enabled bool
	pass    lipgloss.Style
	fail    lipgloss.Style
}

// PlainStyle returns a Style that leaves text untouched.
func PlainStyle() Style {
	return Style{}
}

// ColorStyle returns a Style that renders passes green and everything
// else red.
func ColorStyle() Style {
	return Style{
		enabled: true,
		pass:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		fail:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// StyleFor returns ColorStyle when w is a terminal and PlainStyle
// otherwise.
func StyleFor(w io.Writer) Style {
	f, ok := w.(interface{ Fd() uintptr })
	if ok && term.IsTerminal(int(f.Fd())) {
		return ColorStyle()
	}
	return PlainStyle()
}

// Render returns text styled for status.
func (s Style) Render(status unit.Status, text string) string {
	if !s.enabled {
		return text
	}
	if status == unit.Passed {
		return s.pass.Render(text)
	}
	return s.fail.Render(text)
}
