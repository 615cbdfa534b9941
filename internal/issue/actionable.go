// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bitforge-eda/bitforge/pkg/types"
)

// Kind classifies a failure for exit-status selection. User errors are
// correctable by the person running the tool (install a package, fix a
// version); internal errors indicate a bug in the calling code or in the
// catalog data and must never be presented as something the user caused.
type Kind int

const (
	// KindUser is a failure the user can remedy.
	KindUser Kind = iota
	// KindInternal is an invariant violation in code or catalog data.
	KindInternal
)

// ExitCode returns the process exit status for this kind of failure.
// The two kinds are deliberately distinguishable from the shell.
func (k Kind) ExitCode() types.ExitCode {
	if k == KindInternal {
		return types.ExitInternal
	}
	return types.ExitUserError
}

// ActionableError is an error with context for user-facing error messages.
// It records what operation failed, what resource was involved, and
// suggestions for how to fix the issue.
type ActionableError struct {
	// Kind selects the exit status and presentation register.
	Kind Kind

	// Operation describes what was being attempted (e.g., "verify package").
	Operation string

	// Resource identifies the package, file, or entity involved (optional).
	Resource string

	// Suggestions are remediation hints shown beneath the message (optional).
	Suggestions []string

	// Page is the id of the Markdown remediation page for --explain (optional).
	Page Id

	// Cause is the underlying error that triggered this error (optional).
	Cause error
}

// NewUserError creates a user-correctable ActionableError.
func NewUserError(operation, resource string) *ActionableError {
	return &ActionableError{Kind: KindUser, Operation: operation, Resource: resource}
}

// NewInternalError creates an internal-invariant ActionableError wrapping cause.
func NewInternalError(operation string, cause error) *ActionableError {
	return &ActionableError{Kind: KindInternal, Operation: operation, Cause: cause}
}

// WithSuggestions appends remediation hints and returns the error for chaining.
func (e *ActionableError) WithSuggestions(sugs ...string) *ActionableError {
	e.Suggestions = append(e.Suggestions, sugs...)
	return e
}

// WithPage attaches a Markdown remediation page id and returns the error.
func (e *ActionableError) WithPage(id Id) *ActionableError {
	e.Page = id
	return e
}

// Wrap records the underlying cause and returns the error for chaining.
func (e *ActionableError) Wrap(err error) *ActionableError {
	e.Cause = err
	return e
}

// Error implements the error interface.
// Returns a concise message suitable for default (non-verbose) output.
func (e *ActionableError) Error() string {
	var msg strings.Builder

	if e.Kind == KindInternal {
		msg.WriteString("internal error: ")
	}
	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)

	if e.Resource != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Resource)
	}

	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}

	return msg.String()
}

// Unwrap returns the underlying cause error for use with errors.Is/As.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format returns a formatted message with optional verbosity.
//
// When verbose is false:
//
//	failed to <operation>: <resource>: <cause message>
//	  • <suggestion 1>
//	  • <suggestion 2>
//
// When verbose is true, additionally includes the full error chain.
func (e *ActionableError) Format(verbose bool) string {
	var msg strings.Builder

	msg.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		msg.WriteString("\n")
		for _, suggestion := range e.Suggestions {
			msg.WriteString("\n  • ")
			msg.WriteString(suggestion)
		}
	}

	if verbose && e.Cause != nil {
		msg.WriteString("\n\nError chain:")
		err := e.Cause
		depth := 1
		for err != nil {
			fmt.Fprintf(&msg, "\n  %d. %s", depth, err.Error())
			err = errors.Unwrap(err)
			depth++
		}
	}

	return msg.String()
}

// ExitCodeFor returns the exit status appropriate for err: internal-kind
// ActionableErrors get the internal code, everything else is a user error.
func ExitCodeFor(err error) types.ExitCode {
	var ae *ActionableError
	if errors.As(err, &ae) {
		return ae.Kind.ExitCode()
	}
	return types.ExitUserError
}
