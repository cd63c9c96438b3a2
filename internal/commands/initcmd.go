package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/quillkit/quill/input"
	"github.com/quillkit/quill/internal/config"
	"github.com/quillkit/quill/output"
)

// InitCmd creates and returns the 'init' command for writing quill.yml
func InitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default quill.yml in the current directory",
		Long: `Writes quill.yml with the default theme so prompt colors can be
customized. Asks before overwriting an existing file unless --force
is given.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if _, err := os.Stat(config.FileName); err == nil && !force {
				ok, err := input.Confirm(config.FileName+" already exists. Overwrite?", false)
				if err != nil {
					output.Error(err.Error())
					os.Exit(2)
				}
				if !ok {
					output.Info("keeping existing " + config.FileName)
					return
				}
			}

			if err := config.Save(config.FileName, config.Default()); err != nil {
				output.Errorf("writing %s: %v", config.FileName, err)
				os.Exit(1)
			}

			output.Success("wrote " + config.FileName)
			output.Info("Next steps:")
			output.Step("edit " + config.FileName + " to change prompt colors")
			output.Step("quill ask --type uint \"How many? \"")
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing quill.yml without asking")

	return cmd
}
