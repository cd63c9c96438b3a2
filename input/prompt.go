package input

import "strings"

// Prompt asks for text input with an optional default value. Pressing Enter
// without typing anything (after whitespace trimming) returns the default.
//
// Example:
//
//	modulePath, err := input.Prompt("Module path", "github.com/username/myapp")
//	// Displays: Module path (github.com/username/myapp): _
func Prompt(message, defaultValue string) (string, error) {
	var (
		line string
		err  error
	)
	if defaultValue != "" {
		line, err = Linef("%s (%s): ", message, defaultValue)
	} else {
		line, err = Linef("%s: ", message)
	}
	if err != nil {
		return "", err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue, nil
	}
	return line, nil
}

// Confirm asks a yes/no question. It returns true for y/Y/yes/YES, false
// for anything else, and the default when the answer is empty.
//
// Example:
//
//	ok, err := input.Confirm("Overwrite quill.yml?", false)
//	// Displays: Overwrite quill.yml? [y/N]: _
func Confirm(message string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	line, err := Linef("%s %s: ", message, hint)
	if err != nil {
		return false, err
	}

	line = strings.ToLower(strings.TrimSpace(line))
	if line == "" {
		return defaultYes, nil
	}
	return line == "y" || line == "yes", nil
}
