// SPDX-License-Identifier: MPL-2.0

package broker

import (
	"errors"
	"testing"
)

func TestExitCode_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    ExitCode
		wantErr bool
	}{
		{name: "success", code: 0},
		{name: "config error", code: ExitCodeConfigError},
		{name: "upper bound", code: 255},
		{name: "negative", code: -1, wantErr: true},
		{name: "out of range", code: 256, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.code.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidExitCode) {
					t.Fatalf("Validate() = %v, want errors.Is(ErrInvalidExitCode)", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestExitCode_IsSuccess(t *testing.T) {
	t.Parallel()

	if !ExitCode(0).IsSuccess() {
		t.Error("IsSuccess(0) = false, want true")
	}
	if ExitCode(1).IsSuccess() {
		t.Error("IsSuccess(1) = true, want false")
	}
}

func TestExitCode_String(t *testing.T) {
	t.Parallel()

	if got := ExitCodeNotFound.String(); got != "127" {
		t.Errorf("String() = %q, want %q", got, "127")
	}
}
