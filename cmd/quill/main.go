package main

import (
	"os"

	"github.com/quillkit/quill/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.AskCmd())
	rootCmd.AddCommand(commands.ConfirmCmd())
	rootCmd.AddCommand(commands.LineCmd())
	rootCmd.AddCommand(commands.InitCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
