// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "resolve container runtime"},
			want: "failed to resolve container runtime",
		},
		{
			name: "with resource",
			err:  &ActionableError{Operation: "load configuration", Resource: "/etc/artemisup/config.toml"},
			want: "failed to load configuration: /etc/artemisup/config.toml",
		},
		{
			name: "with cause",
			err: &ActionableError{
				Operation: "resolve container runtime",
				Cause:     errors.New("POD_CONTAINER is not set"),
			},
			want: "failed to resolve container runtime: POD_CONTAINER is not set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("underlying")
	ae := WrapWithOperation(cause, "do the thing")
	if !errors.Is(ae, cause) {
		t.Error("errors.Is() should match the wrapped cause")
	}
}

func TestWrapWithOperation_NilError(t *testing.T) {
	t.Parallel()

	if got := WrapWithOperation(nil, "anything"); got != nil {
		t.Errorf("WrapWithOperation(nil) = %v, want nil", got)
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	ae := NewErrorContext().
		WithOperation("resolve container runtime").
		WithResource(".env").
		WithSuggestion("Set POD_CONTAINER=podman").
		WithSuggestion("Or install docker").
		Wrap(cause).
		Build()

	if ae == nil {
		t.Fatal("Build() = nil, want error")
	}
	if ae.Operation != "resolve container runtime" {
		t.Errorf("Operation = %q", ae.Operation)
	}
	if ae.Resource != ".env" {
		t.Errorf("Resource = %q", ae.Resource)
	}
	if len(ae.Suggestions) != 2 {
		t.Errorf("Suggestions = %v, want 2", ae.Suggestions)
	}
	if !errors.Is(ae, cause) {
		t.Error("Build() lost the cause")
	}
}

func TestErrorContext_BuildRequiresOperation(t *testing.T) {
	t.Parallel()

	if got := NewErrorContext().WithSuggestion("hmm").Build(); got != nil {
		t.Errorf("Build() without operation = %v, want nil", got)
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	ae := NewErrorContext().
		WithOperation("resolve container runtime").
		WithSuggestion("Set POD_CONTAINER=podman").
		Wrap(errors.New("POD_CONTAINER is not set")).
		Build()

	plain := ae.Format(false)
	if !strings.Contains(plain, "Set POD_CONTAINER=podman") {
		t.Errorf("Format(false) = %q, missing suggestion", plain)
	}
	if strings.Contains(plain, "Error chain:") {
		t.Errorf("Format(false) = %q, should not include the error chain", plain)
	}

	verbose := ae.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Errorf("Format(true) = %q, missing error chain", verbose)
	}
}
