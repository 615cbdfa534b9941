// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/bitforge-eda/bitforge/pkg/types"
)

// ExitError signals a specific exit code without forcing os.Exit in RunE
// handlers. User errors exit 1, internal invariant violations exit 2.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
