package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/sys/unix"
)

// Styles holds the lipgloss styles for output formatting.
type Styles struct {
	Header  lipgloss.Style
	Path    lipgloss.Style
	Binary  lipgloss.Style
	Warning lipgloss.Style
}

// NewStyles creates the default color styles.
func NewStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // cyan
		Path:    lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true), // bold magenta
		Binary:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // yellow
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("1")), // red
	}
}

// ForceColor makes lipgloss emit ANSI colors even when stdout is not a terminal.
func ForceColor() {
	lipgloss.SetColorProfile(termenv.ANSI)
}

// IsTerminal checks if the given file descriptor is a terminal using ioctl.
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}

// StdoutIsTerminal returns true if stdout is a terminal.
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout.Fd())
}
