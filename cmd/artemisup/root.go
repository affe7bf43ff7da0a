// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"artemisup/internal/broker"
	"artemisup/internal/config"
	"artemisup/internal/container"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// disablePersistence mounts ./etc-override into the broker container
	disablePersistence bool
	// envFile is the dotenv override file consulted before launch
	envFile string
	// dryRun prints the runtime invocation instead of dispatching it
	dryRun bool

	// rootCmd represents the base command; running it launches the broker
	rootCmd = &cobra.Command{
		Use:   "artemisup",
		Short: "Launch a local ActiveMQ Artemis broker container",
		Long: TitleStyle.Render("artemisup") + SubtitleStyle.Render(" - Launch a local ActiveMQ Artemis broker container") + `

artemisup runs the upstream ` + broker.Image + ` image through your
container runtime (Docker or Podman) with the broker port (61616) and web
console port (8161) published on the host. It blocks until the broker stops
and exits with the broker container's exit code.

The runtime binary is taken from the ` + broker.RuntimeEnvVar + ` environment
variable. A ` + broker.DefaultEnvFile + ` file in the working directory is
consulted for variables the environment does not already set.

` + SubtitleStyle.Render("Examples:") + `
  POD_CONTAINER=podman artemisup          Run the broker with persistence
  artemisup --disable-persistence         Mount ./etc-override to turn persistence off
  artemisup --dry-run                     Show the runtime invocation and exit`,
		Args: cobra.NoArgs,
		RunE: runLaunch,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.Flags().BoolVar(&disablePersistence, "disable-persistence", false,
		"mount ./"+broker.EtcOverrideDir+" into the container to disable message persistence")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the runtime invocation without executing it")
	rootCmd.Flags().StringVar(&envFile, "env-file", broker.DefaultEnvFile, "dotenv file consulted for variables not already set")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/artemisup/config.toml)")

	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// fang provides styled help/errors and signal-aware context cancellation;
	// a terminal signal cancels the command context, which terminates the
	// broker child process best-effort.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig applies the --config override and config-file defaults
// before any command runs.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Get()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
	}

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// runLaunch is the root command handler: resolve configuration, resolve the
// engine, then dispatch the broker container and propagate its exit code.
func runLaunch(cmd *cobra.Command, _ []string) error {
	// Cached by initRootConfig; a load error was already surfaced there and
	// Get degrades to defaults.
	cfg, _ := config.Get()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	launchCfg, warnings, err := broker.ResolveLaunchConfig(broker.ResolveOptions{
		Environ:            os.Environ(),
		EnvFile:            envFile,
		WorkDir:            cwd,
		DisablePersistence: disablePersistence,
		RuntimeFallback:    cfg.Engine,
	})
	for _, w := range warnings {
		log.Warn("ignoring malformed env file line", "at", w.String())
	}
	if err != nil {
		var unset *broker.RuntimeUnsetError
		if errors.As(err, &unset) {
			ae := unset.Actionable()
			fmt.Fprintln(cmd.ErrOrStderr(), SubtitleStyle.Render(ae.Format(verbose)))
			return &ExitError{Code: broker.ExitCodeConfigError, Err: ae}
		}
		return err
	}

	engine, err := container.ResolveEngine(launchCfg.RuntimeBinary)
	if err != nil {
		return &ExitError{Code: launchErrorExitCode(err), Err: err}
	}

	launcher := broker.NewLauncher(engine, launchCfg,
		broker.WithStdio(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()))

	if dryRun {
		renderDryRun(cmd.OutOrStdout(), launcher)
		return nil
	}

	code, err := launcher.Launch(cmd.Context())
	if err != nil {
		return &ExitError{Code: code, Err: err}
	}
	if !code.IsSuccess() {
		// The broker child already reported whatever went wrong on the
		// inherited stderr; just carry its exit code out.
		return &ExitError{Code: code}
	}
	return nil
}

// launchErrorExitCode maps an engine resolution failure to the conventional
// shell exit codes: 127 for a missing binary, 126 for one that exists but
// cannot be executed.
func launchErrorExitCode(err error) broker.ExitCode {
	var notAvailable *container.EngineNotAvailableError
	if errors.As(err, &notAvailable) {
		if notAvailable.IsNotFound() {
			return broker.ExitCodeNotFound
		}
		return broker.ExitCodeNotExecutable
	}
	return 1
}
