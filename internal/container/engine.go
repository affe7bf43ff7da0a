// SPDX-License-Identifier: MPL-2.0

package container

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"
)

// Engine defines the operations the launcher needs from a container runtime.
type Engine interface {
	// Name returns the engine name (docker or podman).
	Name() string
	// BinaryPath returns the resolved path of the engine binary.
	BinaryPath() string
	// Available checks if the engine responds on this system.
	Available() bool
	// Version returns the engine version.
	Version(ctx context.Context) (string, error)
	// Run runs a container and blocks until it exits.
	Run(ctx context.Context, opts RunOptions) (*RunResult, error)
	// RunArgs returns the argument list Run would dispatch, without executing.
	RunArgs(opts RunOptions) []string
}

// EngineType identifies the container engine type.
type EngineType string

const (
	EngineTypePodman EngineType = "podman"
	EngineTypeDocker EngineType = "docker"
)

// ErrEngineNotAvailable is the sentinel error wrapped by EngineNotAvailableError.
var ErrEngineNotAvailable = errors.New("container engine not available")

// EngineNotAvailableError is returned when the configured runtime binary cannot
// be used: it does not exist on PATH, or it exists but is not executable.
type EngineNotAvailableError struct {
	Binary string
	Cause  error
}

// Error implements the error interface.
func (e *EngineNotAvailableError) Error() string {
	return fmt.Sprintf("container runtime %q is not available: %v", e.Binary, e.Cause)
}

// Unwrap returns both ErrEngineNotAvailable and the lookup cause, so callers
// can match either with errors.Is (e.g., exec.ErrNotFound vs. fs.ErrPermission).
func (e *EngineNotAvailableError) Unwrap() []error {
	return []error{ErrEngineNotAvailable, e.Cause}
}

// IsNotFound reports whether the binary was missing entirely, as opposed to
// present but not executable.
func (e *EngineNotAvailableError) IsNotFound() bool {
	return errors.Is(e.Cause, exec.ErrNotFound) || errors.Is(e.Cause, fs.ErrNotExist)
}

// ResolveEngine resolves the user-configured runtime binary to an Engine.
// The binary may be a bare name looked up on PATH ("podman") or a path
// ("/usr/local/bin/docker"). The engine type is chosen from the binary's
// basename; anything that is not podman gets docker-compatible behavior,
// which covers docker itself and drop-in replacements like nerdctl.
//
// No fallback engine is ever tried: the binary comes from explicit user
// configuration and substituting another runtime behind the user's back
// would be surprising.
func ResolveEngine(binary string, opts ...BaseCLIEngineOption) (Engine, error) {
	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, &EngineNotAvailableError{Binary: binary, Cause: err}
	}

	base := strings.TrimSuffix(filepath.Base(path), ".exe")
	if strings.Contains(base, string(EngineTypePodman)) {
		return NewPodmanEngine(HostFilesystemPath(path), opts...), nil
	}
	return NewDockerEngine(HostFilesystemPath(path), opts...), nil
}
