package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quillkit/quill/input"
	"github.com/quillkit/quill/internal/config"
	"github.com/quillkit/quill/output"
)

// LineCmd creates and returns the 'line' command for raw line fetches
func LineCmd() *cobra.Command {
	var defaultValue string

	cmd := &cobra.Command{
		Use:   "line [prompt]",
		Short: "Prompt for one raw line of input",
		Long: `Writes the prompt to stdout, reads one line from stdin, and prints it
to stdout unparsed. Exits 2 when console I/O fails.

Example:
  name=$(quill line "What is your name? ")`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadTheme()

			message := ""
			if len(args) > 0 {
				message = args[0]
			}

			var (
				line string
				err  error
			)
			switch {
			case defaultValue != "":
				line, err = lineWithDefault(cfg, message, defaultValue)
			case message != "":
				line, err = input.Line(renderPrompt(cfg, message))
			default:
				line, err = input.Line()
			}
			if err != nil {
				output.Error(err.Error())
				os.Exit(2)
			}

			fmt.Println(line)
		},
	}

	cmd.Flags().StringVarP(&defaultValue, "default", "d", "", "Value printed when the answer is empty")

	return cmd
}

// lineWithDefault renders the themed equivalent of input.Prompt: the
// message in the prompt style, the default hint in the hint style.
func lineWithDefault(cfg *config.Config, message, defaultValue string) (string, error) {
	prompt := renderHint(cfg, "("+defaultValue+"): ")
	if message != "" {
		prompt = renderPrompt(cfg, message) + " " + prompt
	}

	line, err := input.Line(prompt)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(line) == "" {
		return defaultValue, nil
	}
	return line, nil
}
