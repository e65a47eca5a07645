// Package errutil formats errors for the command-line and REPL surfaces: a
// file/context header followed by the message, with an optional bold/color
// treatment for interactive terminals.
package errutil

import (
	"fmt"
	"strings"

	"github.com/cwbudde/lispgo/internal/printer"
	"github.com/cwbudde/lispgo/internal/runtime"
)

// ReadError reports a failure in reading source text: a file name (empty
// for REPL input) plus the underlying parse message.
type ReadError struct {
	File    string
	Message string
}

func (e *ReadError) Error() string { return e.Format(false) }

// Format renders the error with an optional bold treatment for color
// terminals.
func (e *ReadError) Format(color bool) string {
	var sb strings.Builder
	if e.File != "" {
		sb.WriteString(fmt.Sprintf("Error in %s:\n", e.File))
	} else {
		sb.WriteString("Error:\n")
	}
	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

// NewReadError wraps a reader error with its originating file name.
func NewReadError(file string, cause error) *ReadError {
	return &ReadError{File: file, Message: cause.Error()}
}

// FormatThrown renders an uncaught Thrown error the way a REPL should
// report it: the value that was thrown, printed readably, prefixed with
// a fixed banner so it's visually distinct from a normal result.
func FormatThrown(t *runtime.Thrown, color bool) string {
	var sb strings.Builder
	if color {
		sb.WriteString("\033[1;31m")
	}
	sb.WriteString("Uncaught exception: ")
	sb.WriteString(printer.Print(t.Val, true))
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}
