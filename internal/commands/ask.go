package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quillkit/quill/input"
	"github.com/quillkit/quill/output"
)

// AskCmd creates and returns the 'ask' command for typed prompts
func AskCmd() *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "ask [prompt]",
		Short: "Prompt for one line and parse it into a typed value",
		Long: `Writes the prompt to stdout, reads one line from stdin, parses it as
--type, and prints the parsed value to stdout.

Exit codes:
  0  parsed successfully
  1  the answer did not parse as --type
  2  console I/O failed

Example:
  count=$(quill ask --type uint "How many? ")`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadTheme()

			var prompt []any
			if len(args) > 0 && args[0] != "" {
				prompt = append(prompt, renderPrompt(cfg, args[0]))
			}

			value, err := askValue(typeName, prompt)
			if err != nil {
				output.Error(err.Error())
				if input.IsFetch(err) {
					os.Exit(2)
				}
				os.Exit(1)
			}

			fmt.Println(value)
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "string", "Target type: string, bool, int, uint, or float")

	return cmd
}

// askValue fetches one line and parses it per the runtime type name,
// formatting the result back to text for stdout.
func askValue(typeName string, prompt []any) (string, error) {
	switch typeName {
	case "string":
		return input.Value[string](prompt...)
	case "bool":
		b, err := input.Value[bool](prompt...)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(b), nil
	case "int":
		n, err := input.Value[int64](prompt...)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	case "uint":
		n, err := input.Value[uint64](prompt...)
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(n, 10), nil
	case "float":
		f, err := input.Value[float64](prompt...)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("unknown type %q (want string, bool, int, uint, or float)", typeName)
	}
}
