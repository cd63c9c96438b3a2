package input

import "fmt"

// Value fetches one line and parses it into T. Failures come back as *Error:
// KindFetch for console I/O, KindParse for T rejecting the text. A fetch
// failure short-circuits; the parse is never attempted.
//
// Example:
//
//	n, err := input.Value[uint64]("the square of ")
func Value[T Parseable](a ...any) (T, error) {
	line, err := Line(a...)
	if err != nil {
		var zero T
		return zero, newFetchError(err)
	}
	return parseTagged[T](line)
}

// Valuef is Value with a fmt.Printf-style prompt.
func Valuef[T Parseable](format string, a ...any) (T, error) {
	line, err := Linef(format, a...)
	if err != nil {
		var zero T
		return zero, newFetchError(err)
	}
	return parseTagged[T](line)
}

// Scan is Value with the target type inferred from the destination pointer.
// On failure dst is left untouched.
//
// Example:
//
//	var port int
//	err := input.Scan(&port, "Port: ")
func Scan[T Parseable](dst *T, a ...any) error {
	v, err := Value[T](a...)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// Scanf is Scan with a fmt.Printf-style prompt.
func Scanf[T Parseable](dst *T, format string, a ...any) error {
	v, err := Valuef[T](format, a...)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// Expect fetches one line and parses it into T, requiring the fetch to
// succeed: console I/O failure panics with FetchErrorMessage. Parse
// failures are returned as T's native error, unwrapped.
//
// Example:
//
//	n, err := input.Expect[uint64]("the square of ")
func Expect[T Parseable](a ...any) (T, error) {
	line, err := Line(a...)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", FetchErrorMessage, err))
	}
	return parse[T](line)
}

// Expectf is Expect with a fmt.Printf-style prompt.
func Expectf[T Parseable](format string, a ...any) (T, error) {
	line, err := Linef(format, a...)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", FetchErrorMessage, err))
	}
	return parse[T](line)
}

// ExpectScan is Expect with the target type inferred from the destination
// pointer. Console I/O failure panics with FetchErrorMessage; a parse
// failure comes back unwrapped and leaves dst untouched.
func ExpectScan[T Parseable](dst *T, a ...any) error {
	v, err := Expect[T](a...)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// ExpectScanf is ExpectScan with a fmt.Printf-style prompt.
func ExpectScanf[T Parseable](dst *T, format string, a ...any) error {
	v, err := Expectf[T](format, a...)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func parseTagged[T Parseable](line string) (T, error) {
	v, err := parse[T](line)
	if err != nil {
		var zero T
		return zero, newParseError(err)
	}
	return v, nil
}
