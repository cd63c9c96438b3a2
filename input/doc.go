// Package input reads single lines of console input, optionally parsed
// into a typed value.
//
// # Overview
//
// Every fetch is one prompt write followed by one line read: the prompt
// (if any) goes to standard output, then one line is consumed from
// standard input with its trailing terminator removed. Three tiers are
// available:
//
//   - Line / Linef return the raw text and any I/O error.
//   - Value / Valuef / Scan / Scanf parse the text into a target type and
//     tag failures, so callers can tell an I/O failure from a parse
//     failure without the process halting.
//   - Expect / Expectf / ExpectScan / ExpectScanf treat I/O failure as
//     fatal (panic with a fixed diagnostic) and return only the target
//     type's own parse error.
//
// # Usage
//
//	name, err := input.Line("What is your name? ")
//
//	// Recoverable: match the failure kind
//	n, err := input.Value[uint64]("the square of ")
//	if err != nil {
//	    if input.IsFetch(err) {
//	        // console I/O broke
//	    } else {
//	        // the text was not a uint64
//	    }
//	}
//
//	// Inferred target type
//	var port int
//	if err := input.Scan(&port, "Port: "); err != nil { ... }
//
//	// Quick tools: only parse failures are worth handling
//	n, err := input.Expect[uint64]("the square of ")
//
// # Retries
//
// There are none. One fetch, one parse, per call; callers wanting
// ask-again-on-bad-input loop at the call site.
package input
