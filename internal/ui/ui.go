package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	newStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	ovrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// NewLine reports a file that did not exist before.
func NewLine(w io.Writer, path string) {
	fmt.Fprintln(w, newStyle.Render("new")+"  "+path)
}

// OvrLine reports a file that replaced an earlier one.
func OvrLine(w io.Writer, path string) {
	fmt.Fprintln(w, ovrStyle.Render("ovr")+"  "+path)
}

func WarnLine(w io.Writer, msg string) {
	fmt.Fprintln(w, warnStyle.Render("warn")+" "+msg)
}

func ErrorLine(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render(msg))
}

func SummaryLine(w io.Writer, files, scenarios, warnings int) {
	fmt.Fprintf(w, "generated %d files from %d scenarios", files, scenarios)
	if warnings > 0 {
		fmt.Fprintf(w, ", %d unrecognized steps", warnings)
	}
	fmt.Fprintln(w)
}

// StepLine prints a step classification followed by its emitted code.
func StepLine(w io.Writer, classification string, code []string) {
	fmt.Fprintln(w, classification)
	for _, line := range code {
		fmt.Fprintln(w, "  "+faintStyle.Render(line))
	}
}
