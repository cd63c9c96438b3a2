package commands

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/quillkit/quill/internal/config"
	"github.com/quillkit/quill/output"
)

// loadTheme reads quill.yml, falling back to the default theme when the
// file is malformed so a broken config never blocks a prompt.
func loadTheme() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		output.Verbose(err.Error())
		return config.Default()
	}
	return cfg
}

// renderPrompt styles the prompt message with the theme's prompt style.
// Styling only happens when stdout is a terminal; piped output gets the
// prompt bytes verbatim.
func renderPrompt(cfg *config.Config, text string) string {
	if text == "" || !styleEnabled(cfg) {
		return text
	}
	return styleFor(cfg.Prompt).Render(text)
}

// renderHint styles secondary prompt text, like a default-value hint.
func renderHint(cfg *config.Config, text string) string {
	if text == "" || !styleEnabled(cfg) {
		return text
	}
	return styleFor(cfg.Hint).Render(text)
}

func styleFor(s config.Style) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color))
	if s.Bold {
		style = style.Bold(true)
	}
	return style
}

func styleEnabled(cfg *config.Config) bool {
	return cfg.Color && !noColor && term.IsTerminal(int(os.Stdout.Fd()))
}
