// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"testing"

	"artemisup/internal/broker"
)

func TestExitError_Error(t *testing.T) {
	t.Parallel()

	withErr := &ExitError{Code: 2, Err: errors.New("POD_CONTAINER is not set")}
	if got := withErr.Error(); got != "POD_CONTAINER is not set" {
		t.Errorf("Error() = %q, want the wrapped message", got)
	}

	bare := &ExitError{Code: 3}
	if got := bare.Error(); got != "exit status 3" {
		t.Errorf("Error() = %q, want %q", got, "exit status 3")
	}
}

func TestExitError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := &ExitError{Code: 1, Err: cause}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() should match the wrapped cause")
	}

	var exitErr *ExitError
	if !errors.As(error(err), &exitErr) {
		t.Fatal("errors.As() should recover the ExitError")
	}
	if exitErr.Code != broker.ExitCode(1) {
		t.Errorf("Code = %v, want 1", exitErr.Code)
	}
}
