package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/quillkit/quill/input"
	"github.com/quillkit/quill/output"
)

// ConfirmCmd creates and returns the 'confirm' command for yes/no questions
func ConfirmCmd() *cobra.Command {
	var defaultYes bool

	cmd := &cobra.Command{
		Use:   "confirm [question]",
		Short: "Ask a yes/no question, answered through the exit code",
		Long: `Asks a yes/no question and exits 0 for yes, 1 for no, 2 when console
I/O fails. An empty answer takes the default.

Example:
  quill confirm --default-yes "Run go mod tidy?" && go mod tidy`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadTheme()

			question := "Continue?"
			if len(args) > 0 && args[0] != "" {
				question = args[0]
			}

			ok, err := input.Confirm(renderPrompt(cfg, question), defaultYes)
			if err != nil {
				output.Error(err.Error())
				os.Exit(2)
			}

			answer := "no"
			if ok {
				answer = "yes"
			}
			output.Verbose("answered: " + answer)

			if !ok {
				os.Exit(1)
			}
		},
	}

	cmd.Flags().BoolVarP(&defaultYes, "default-yes", "y", false, "Treat an empty answer as yes")

	return cmd
}
