package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Stream access is serialized per stream, not per fetch: the prompt write
// holds the stdout lock, the line read holds the stdin lock. Interleaving
// between concurrent callers is their own problem.
var (
	stdoutMu sync.Mutex
	stdinMu  sync.Mutex
)

// Line writes the prompt fragments to standard output, then reads one line
// from standard input and returns it without its trailing terminator.
//
// Fragments are rendered like fmt.Print. Passing no fragments skips the
// write entirely. If the write fails, the read is not attempted. End of
// stream is not an error: a final unterminated line comes back as-is, and
// an already-exhausted stream yields "".
func Line(a ...any) (string, error) {
	if len(a) > 0 {
		if err := writePrompt(fmt.Sprint(a...)); err != nil {
			return "", err
		}
	}
	return readLine()
}

// Linef is Line with a fmt.Printf-style prompt.
func Linef(format string, a ...any) (string, error) {
	if err := writePrompt(fmt.Sprintf(format, a...)); err != nil {
		return "", err
	}
	return readLine()
}

// writePrompt writes s to stdout verbatim. os.Stdout is unbuffered, so a
// successful write is already visible; there is no separate flush step.
func writePrompt(s string) error {
	stdoutMu.Lock()
	defer stdoutMu.Unlock()

	_, err := io.WriteString(os.Stdout, s)
	return err
}

// readLine consumes exactly one line from stdin. It reads a byte at a time
// so no input beyond the terminator is buffered away from later calls.
func readLine() (string, error) {
	stdinMu.Lock()
	defer stdinMu.Unlock()

	var b strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 && buf[0] == '\n' {
			// CRLF consoles leave a stray '\r'; drop it with the '\n'.
			return strings.TrimSuffix(b.String(), "\r"), nil
		}
		if n > 0 {
			b.WriteByte(buf[0])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return b.String(), nil
			}
			return "", err
		}
	}
}
