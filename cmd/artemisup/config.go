// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"artemisup/internal/config"

	"github.com/spf13/cobra"
)

// configCmd is the `artemisup config` command tree.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage artemisup configuration",
	Long: `Manage artemisup configuration.

Configuration is stored in:
  - Linux: ~/.config/artemisup/config.toml
  - macOS: ~/Library/Application Support/artemisup/config.toml
  - Windows: %APPDATA%\artemisup\config.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.OutOrStdout())
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ConfigFilePath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})
}

// showConfig prints the effective configuration and where it came from.
func showConfig(w io.Writer) error {
	cfg, used, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, TitleStyle.Render("Configuration"))
	fmt.Fprintln(w)
	source := used
	if source == "" {
		source = "(defaults, no config file)"
	}
	fmt.Fprintf(w, "  %s %s\n", VerboseHighlightStyle.Render("Source:"), source)
	engine := cfg.Engine
	if engine == "" {
		engine = "(unset, POD_CONTAINER required)"
	}
	fmt.Fprintf(w, "  %s %s\n", VerboseHighlightStyle.Render("Engine:"), engine)
	fmt.Fprintf(w, "  %s %v\n", VerboseHighlightStyle.Render("Verbose:"), cfg.UI.Verbose)
	return nil
}
