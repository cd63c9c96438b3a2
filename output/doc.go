// Package output provides styled status messages for the quill CLI.
//
// # Overview
//
// Messages go to standard error by default, so standard output stays
// clean for the fetched values that scripts capture.
//
// # Usage
//
//	output.Success("wrote quill.yml")
//	output.Error("unknown type \"decimal\"")
//	output.Info("answer recorded")
//	output.Step("quill ask --type uint \"How many? \"")
//
// # Verbose Mode
//
// Diagnostics behind the --verbose flag:
//
//	output.SetVerbose(true)
//	output.Verbose("loaded theme from quill.yml")
//
// # Styling
//
// lipgloss renders the colors; SetColor(false) turns styling off for
// non-terminal output or --no-color.
package output
