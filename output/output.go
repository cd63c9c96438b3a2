package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	writer      io.Writer = os.Stderr
	verboseMode bool
	colorMode   = true
)

// SetWriter redirects all messages. Tests use this to capture output.
func SetWriter(w io.Writer) {
	writer = w
}

// SetVerbose enables or disables Verbose messages.
// The CLI calls this when --verbose is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// SetColor enables or disables lipgloss styling.
// The CLI calls this for --no-color and non-terminal output.
func SetColor(enabled bool) {
	colorMode = enabled
}

// Success prints a completed-operation message.
//
// Example:
//
//	output.Success("wrote quill.yml")
func Success(msg string) {
	emit(successStyle, "✓ "+msg)
}

// Error prints a failure message that needs user attention.
func Error(msg string) {
	emit(errorStyle, "✗ "+msg)
}

// Errorf is Error with fmt.Sprintf formatting.
func Errorf(format string, a ...any) {
	Error(fmt.Sprintf(format, a...))
}

// Info prints a status update or explanation.
func Info(msg string) {
	emit(infoStyle, msg)
}

// Step prints an indented sub-item or suggested command.
//
// Example:
//
//	output.Step("quill confirm \"Deploy?\"")
func Step(msg string) {
	emit(stepStyle, "   "+msg)
}

// Verbose prints a diagnostic, but only when verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		emit(stepStyle, "· "+msg)
	}
}

func emit(style lipgloss.Style, msg string) {
	if colorMode {
		msg = style.Render(msg)
	}
	fmt.Fprintln(writer, msg)
}
