// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"artemisup/internal/broker"
)

// ExitError signals a specific exit code without forcing os.Exit in RunE
// handlers. Execute unwraps it and exits with the carried code, which is how
// the broker child's exit status travels out of the process unchanged.
type ExitError struct {
	Code broker.ExitCode
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
