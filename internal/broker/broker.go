// SPDX-License-Identifier: MPL-2.0

package broker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"artemisup/internal/container"
	"artemisup/internal/issue"

	"github.com/charmbracelet/log"
)

const (
	// Image is the upstream broker image reference. The launch shape is fixed:
	// this launcher exists to run exactly this image, not arbitrary ones.
	Image = "apache/activemq-artemis:latest-alpine"

	// ContainerName is the fixed name given to the broker container.
	ContainerName = "artemis"

	// BrokerPort is the multi-protocol acceptor port (CORE, AMQP, STOMP, OpenWire).
	BrokerPort container.NetworkPort = 61616

	// ConsolePort is the web console port.
	ConsolePort container.NetworkPort = 8161

	// EtcOverrideDir is the host directory name, relative to the working
	// directory, whose contents override the broker instance configuration.
	EtcOverrideDir = "etc-override"

	// EtcOverrideTarget is where the broker image looks for configuration
	// overrides inside the container.
	EtcOverrideTarget container.MountTargetPath = "/var/lib/artemis-instance/etc-override"

	// RuntimeEnvVar names the environment variable that selects the container
	// runtime binary.
	RuntimeEnvVar = "POD_CONTAINER"

	// DefaultEnvFile is the conventional override file, resolved relative to
	// the working directory and loaded only if present.
	DefaultEnvFile = ".env"
)

// ErrRuntimeUnset is the sentinel error wrapped by RuntimeUnsetError.
var ErrRuntimeUnset = errors.New("container runtime not configured")

type (
	// LaunchConfig is the resolved launch configuration. It is built once per
	// invocation by ResolveLaunchConfig and never mutated afterwards.
	LaunchConfig struct {
		// RuntimeBinary is the container runtime binary name or path.
		RuntimeBinary string
		// PersistenceDisabled reports whether the etc-override mount is active.
		PersistenceDisabled bool
		// HostMountPath is the absolute host path of the etc-override
		// directory. Empty unless PersistenceDisabled is set.
		HostMountPath string
	}

	// ResolveOptions are the raw inputs to launch configuration resolution.
	ResolveOptions struct {
		// Environ is the process environment snapshot (os.Environ() format).
		Environ []string
		// EnvFile is the dotenv override file path. Empty disables file
		// loading; the conventional value is DefaultEnvFile.
		EnvFile string
		// WorkDir is the directory the etc-override mount path is rooted at.
		WorkDir string
		// DisablePersistence mounts WorkDir/etc-override into the container
		// so the broker picks up a configuration with persistence turned off.
		DisablePersistence bool
		// RuntimeFallback is an optional runtime binary from the config file,
		// consulted only when the merged environment does not set
		// POD_CONTAINER. It is explicit user configuration, never a guess.
		RuntimeFallback string
	}

	// RuntimeUnsetError is returned when no container runtime binary is
	// configured anywhere. It wraps ErrRuntimeUnset for errors.Is.
	RuntimeUnsetError struct {
		EnvFile string
	}

	// Launcher dispatches the broker container through a resolved engine.
	Launcher struct {
		engine container.Engine
		cfg    LaunchConfig

		stdin  io.Reader
		stdout io.Writer
		stderr io.Writer
	}

	// LauncherOption configures a Launcher.
	LauncherOption func(*Launcher)
)

// Error implements the error interface.
func (e *RuntimeUnsetError) Error() string {
	return fmt.Sprintf("%s is not set", RuntimeEnvVar)
}

// Unwrap returns ErrRuntimeUnset so callers can use errors.Is for programmatic detection.
func (e *RuntimeUnsetError) Unwrap() error { return ErrRuntimeUnset }

// Actionable converts the error into a user-facing ActionableError with
// concrete suggestions.
func (e *RuntimeUnsetError) Actionable() *issue.ActionableError {
	ctx := issue.NewErrorContext().
		WithOperation("resolve container runtime").
		WithSuggestion(fmt.Sprintf("Set %s to your container runtime binary (e.g., %s=docker or %s=podman)", RuntimeEnvVar, RuntimeEnvVar, RuntimeEnvVar))
	if e.EnvFile != "" {
		ctx = ctx.WithSuggestion(fmt.Sprintf("Or add '%s=podman' to %s", RuntimeEnvVar, e.EnvFile))
	}
	return ctx.Wrap(e).Build()
}

// ResolveLaunchConfig builds the immutable LaunchConfig for this invocation.
//
// The runtime binary is taken from POD_CONTAINER in the merged environment
// (process environment over dotenv file), then from the config-file fallback.
// If neither is set the resolution fails before any child process could be
// dispatched; guessing a runtime here would just defer the failure to a more
// confusing place.
func ResolveLaunchConfig(opts ResolveOptions) (LaunchConfig, []ParseWarning, error) {
	env, warnings, err := BuildEnv(opts.Environ, opts.EnvFile)
	if err != nil {
		return LaunchConfig{}, warnings, err
	}

	binary := strings.TrimSpace(env[RuntimeEnvVar])
	if binary == "" {
		binary = strings.TrimSpace(opts.RuntimeFallback)
	}
	if binary == "" {
		return LaunchConfig{}, warnings, &RuntimeUnsetError{EnvFile: opts.EnvFile}
	}

	cfg := LaunchConfig{RuntimeBinary: binary}
	if opts.DisablePersistence {
		cfg.PersistenceDisabled = true
		cfg.HostMountPath = filepath.Join(opts.WorkDir, EtcOverrideDir)
	}

	log.Debug("resolved launch config",
		"runtime", cfg.RuntimeBinary,
		"persistenceDisabled", cfg.PersistenceDisabled,
		"hostMountPath", cfg.HostMountPath)

	return cfg, warnings, nil
}

// RunOptions returns the container run options for this config. The shape is
// fixed: remove-on-exit, named container, the two published broker ports, and
// the optional etc-override mount. Identical configs always produce identical
// options.
func (c LaunchConfig) RunOptions() container.RunOptions {
	opts := container.RunOptions{
		Image:  Image,
		Name:   ContainerName,
		Remove: true,
		Ports: []container.PortMapping{
			{HostPort: BrokerPort, ContainerPort: BrokerPort},
			{HostPort: ConsolePort, ContainerPort: ConsolePort},
		},
	}
	if c.PersistenceDisabled {
		opts.Volumes = []container.VolumeMount{
			{
				HostPath:      container.HostFilesystemPath(c.HostMountPath),
				ContainerPath: EtcOverrideTarget,
			},
		}
	}
	return opts
}

// --- Launcher ---

// WithStdio sets the standard streams inherited by the broker child process.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) LauncherOption {
	return func(l *Launcher) {
		l.stdin = stdin
		l.stdout = stdout
		l.stderr = stderr
	}
}

// NewLauncher creates a Launcher for the given engine and config.
func NewLauncher(engine container.Engine, cfg LaunchConfig, opts ...LauncherOption) *Launcher {
	l := &Launcher{
		engine: engine,
		cfg:    cfg,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Config returns the launch configuration.
func (l *Launcher) Config() LaunchConfig { return l.cfg }

// Engine returns the resolved container engine.
func (l *Launcher) Engine() container.Engine { return l.engine }

// RunArgs returns the exact argument list Launch would dispatch.
func (l *Launcher) RunArgs() []string {
	return l.engine.RunArgs(l.runOptions())
}

// Launch runs the broker container and blocks until it exits. The child's
// exit code is returned verbatim; a nonzero code is not an error of the
// launcher (interpreting it is the caller's business). Cancelling the context
// terminates the child best-effort.
func (l *Launcher) Launch(ctx context.Context) (ExitCode, error) {
	runOpts := l.runOptions()

	log.Debug("dispatching broker container",
		"engine", l.engine.Name(),
		"binary", l.engine.BinaryPath(),
		"args", strings.Join(l.engine.RunArgs(runOpts), " "))

	result, err := l.engine.Run(ctx, runOpts)
	if err != nil {
		return 1, fmt.Errorf("failed to launch broker: %w", err)
	}
	if result.Error != nil {
		return ExitCode(result.ExitCode), fmt.Errorf("failed to launch broker: %w", result.Error)
	}
	return ExitCode(result.ExitCode), nil
}

func (l *Launcher) runOptions() container.RunOptions {
	opts := l.cfg.RunOptions()
	opts.Stdin = l.stdin
	opts.Stdout = l.stdout
	opts.Stderr = l.stderr
	return opts
}
