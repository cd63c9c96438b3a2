// Package quill holds module-wide metadata for the quill CLI and the
// input library it wraps.
package quill

// Version is the current quill release.
const Version = "0.1.0"
