package commands

import (
	"github.com/spf13/cobra"

	"github.com/quillkit/quill"
	"github.com/quillkit/quill/output"
)

// noColor is set by the persistent --no-color flag and consulted wherever
// prompts or messages are styled.
var noColor bool

// RootCmd creates and returns the root command for the quill CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "quill",
		Short: "Typed console input for shell scripts",
		Long: `Quill prompts for one line of console input, optionally parses it into
a typed value, and tells fetch failures apart from parse failures.

Use it to collect validated input in scripts:
• quill ask --type uint "How many? "   parse or exit 1
• quill confirm "Deploy?"              yes/no via exit code
• quill line "Name: "                  raw line, no parsing

Learn more: https://github.com/quillkit/quill`,
		Version: quill.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
			output.SetColor(!noColor)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable styled prompts and messages")

	return cmd
}
