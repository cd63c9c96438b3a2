package input

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConsole swaps os.Stdin and os.Stdout for pipes, feeds in to stdin,
// runs fn, and returns everything fn wrote to stdout.
func withConsole(t *testing.T, in string, fn func()) string {
	t.Helper()

	inR, inW, err := os.Pipe()
	require.NoError(t, err)
	outR, outW, err := os.Pipe()
	require.NoError(t, err)

	oldIn, oldOut := os.Stdin, os.Stdout
	os.Stdin, os.Stdout = inR, outW
	defer func() {
		os.Stdin, os.Stdout = oldIn, oldOut
		inR.Close()
		outR.Close()
	}()

	_, err = inW.WriteString(in)
	require.NoError(t, err)
	require.NoError(t, inW.Close())

	fn()

	require.NoError(t, outW.Close())
	var buf bytes.Buffer
	_, err = io.Copy(&buf, outR)
	require.NoError(t, err)
	return buf.String()
}

func TestLineStripsTerminator(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"newline", "hello\n", "hello"},
		{"crlf", "hello\r\n", "hello"},
		{"no terminator", "hello", "hello"},
		{"empty line", "\n", ""},
		{"end of stream", "", ""},
		{"only spaces kept", "  spaced  \n", "  spaced  "},
		{"inner newline stops read", "first\nsecond\n", "first"},
		{"bare trailing cr is data", "hello\r", "hello\r"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConsole(t, tt.in, func() {
				got, err := Line()
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		})
	}
}

func TestLineWritesPromptByteExact(t *testing.T) {
	out := withConsole(t, "ok\n", func() {
		got, err := Line("the square of ")
		require.NoError(t, err)
		assert.Equal(t, "ok", got)
	})

	// no added terminator, no styling
	assert.Equal(t, "the square of ", out)
}

func TestLineNoPromptWritesNothing(t *testing.T) {
	out := withConsole(t, "ok\n", func() {
		_, err := Line()
		require.NoError(t, err)
	})

	assert.Empty(t, out)
}

func TestLinefFormatsPrompt(t *testing.T) {
	out := withConsole(t, "ok\n", func() {
		got, err := Linef("attempt %d of %d: ", 2, 3)
		require.NoError(t, err)
		assert.Equal(t, "ok", got)
	})

	assert.Equal(t, "attempt 2 of 3: ", out)
}

func TestLineConsumesLinesInOrder(t *testing.T) {
	withConsole(t, "first\nsecond\nthird\n", func() {
		for _, want := range []string{"first", "second", "third"} {
			got, err := Line()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})
}

func TestLineWriteFailureSkipsRead(t *testing.T) {
	inR, inW, err := os.Pipe()
	require.NoError(t, err)
	defer inR.Close()
	_, err = inW.WriteString("untouched\n")
	require.NoError(t, err)
	require.NoError(t, inW.Close())

	_, outW, err := os.Pipe()
	require.NoError(t, err)
	require.NoError(t, outW.Close()) // every write now fails

	oldIn, oldOut := os.Stdin, os.Stdout
	os.Stdin, os.Stdout = inR, outW
	defer func() { os.Stdin, os.Stdout = oldIn, oldOut }()

	_, err = Line("prompt: ")
	require.Error(t, err)

	// the pending line must still be in the stream
	buf := make([]byte, 32)
	n, err := inR.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "untouched\n", string(buf[:n]))
}

func TestLineReadFailure(t *testing.T) {
	inR, _, err := os.Pipe()
	require.NoError(t, err)
	require.NoError(t, inR.Close()) // every read now fails

	oldIn := os.Stdin
	os.Stdin = inR
	defer func() { os.Stdin = oldIn }()

	_, err = Line()
	require.Error(t, err)
}
