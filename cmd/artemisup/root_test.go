// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"testing"

	"artemisup/internal/broker"
	"artemisup/internal/container"
)

func TestLaunchErrorExitCode(t *testing.T) {
	t.Parallel()

	_, notFoundErr := container.ResolveEngine("definitely-not-a-container-runtime-binary")
	if notFoundErr == nil {
		t.Fatal("expected resolution failure for a nonexistent binary")
	}

	tests := []struct {
		name string
		err  error
		want broker.ExitCode
	}{
		{name: "binary not found", err: notFoundErr, want: broker.ExitCodeNotFound},
		{name: "unrelated error", err: errors.New("boom"), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := launchErrorExitCode(tt.err); got != tt.want {
				t.Errorf("launchErrorExitCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRootCommandFlags(t *testing.T) {
	if rootCmd.Flags().Lookup("disable-persistence") == nil {
		t.Error("--disable-persistence flag is not registered")
	}
	if rootCmd.Flags().Lookup("dry-run") == nil {
		t.Error("--dry-run flag is not registered")
	}
	if f := rootCmd.Flags().Lookup("env-file"); f == nil {
		t.Error("--env-file flag is not registered")
	} else if f.DefValue != broker.DefaultEnvFile {
		t.Errorf("--env-file default = %q, want %q", f.DefValue, broker.DefaultEnvFile)
	}
	if rootCmd.PersistentFlags().Lookup("verbose") == nil {
		t.Error("--verbose flag is not registered")
	}
}
